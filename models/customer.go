package models

// Customer is a read-only projection of a backend customer record. The
// booking flow holds it by reference for the lifetime of one draft only.
type Customer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	BranchID *int   `json:"branch_id,omitempty"`

	DOB     string `json:"dob,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Address string `json:"address,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Remarks string `json:"remarks,omitempty"`
}

// CustomerInput carries the fields for inline customer creation or update.
// ProfileImagePath, when set, is attached as a multipart file part.
type CustomerInput struct {
	Name             string
	Phone            string
	DOB              string
	Gender           string
	Address          string
	Pincode          string
	City             string
	State            string
	Country          string
	Remarks          string
	ProfileImagePath string
}
