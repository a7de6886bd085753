package stubserver

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"labdesk/models"
)

func intPtr(v int) *int { return &v }

// seedCustomers returns the fixture customer register.
func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Ravi Sharma", Phone: "9810000001", BranchID: intPtr(1), City: "Delhi"},
		{ID: 2, Name: "Meena Iyer", Phone: "9810000002", BranchID: intPtr(1), City: "Delhi"},
		{ID: 3, Name: "Joseph Mathew", Phone: "9810000003", BranchID: intPtr(2), City: "Kochi"},
		{ID: 4, Name: "Fatima Khan", Phone: "9810000004", BranchID: intPtr(2), City: "Kochi"},
		{ID: 5, Name: "Asha Rao", Phone: "9810000005", BranchID: intPtr(3), City: "Bengaluru"},
		{ID: 6, Name: "Vikram Rao", Phone: "9810000006", BranchID: intPtr(3), City: "Bengaluru"},
		{ID: 7, Name: "Walk-in Guest", Phone: "9810000007"},
	}
}

// seedTests returns the fixture catalog, keyed by branch. Branch 3 carries
// 23 tests so pagination crosses a page boundary; the first two are priced
// to total 1500 for manual smoke runs.
func seedTests() map[int][]models.Test {
	catalog := make(map[int][]models.Test)

	branch3 := []models.Test{
		{ID: 301, Name: "Complete Blood Count", Price: 700},
		{ID: 302, Name: "Lipid Profile", Price: 800},
	}
	for i := 3; i <= 23; i++ {
		branch3 = append(branch3, models.Test{
			ID:    300 + i,
			Name:  fmt.Sprintf("Branch 3 Panel %02d", i),
			Price: models.Price(250 + 50*i),
		})
	}
	catalog[3] = branch3

	for branch := 1; branch <= 2; branch++ {
		var tests []models.Test
		for i := 1; i <= 14; i++ {
			tests = append(tests, models.Test{
				ID:    branch*100 + i,
				Name:  fmt.Sprintf("Branch %d Panel %02d", branch, i),
				Price: models.Price(300 + 25*i),
			})
		}
		catalog[branch] = tests
	}
	return catalog
}

// seedUser is the development operator account.
type stubUser struct {
	Email    string
	Name     string
	Role     string
	PassHash []byte
}

func seedUser() stubUser {
	hash, _ := bcrypt.GenerateFromPassword([]byte("labdesk123"), bcrypt.DefaultCost)
	return stubUser{
		Email:    "reception@labdesk.local",
		Name:     "Desk Operator",
		Role:     "RECEPTIONIST",
		PassHash: hash,
	}
}
