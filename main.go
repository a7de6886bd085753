// File: labdesk/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"labdesk/api"
	"labdesk/config"
	"labdesk/models"
	"labdesk/services/auth"
	"labdesk/services/booking"
	"labdesk/services/customer"
	"labdesk/services/payment"
	"labdesk/session"
	"labdesk/utils"
)

// console is the interactive receptionist terminal: one booking draft at a
// time, driven by line commands. All screens in the original product are
// thin views over the same services wired up here.
type console struct {
	in        *bufio.Scanner
	store     *session.Store
	authSvc   *auth.Service
	customers *customer.Service
	payments  *payment.Collector
	flow      *booking.Flow
	query     string
}

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	store := session.NewStore(config.AppConfig.SessionFile)
	if err := store.Init(); err != nil {
		logger.Sugar().Warnf("could not restore session: %v", err)
	}

	client := api.NewClient(config.AppConfig.APIBaseURL, config.APITimeout(), store)

	c := &console{
		in:        bufio.NewScanner(os.Stdin),
		store:     store,
		authSvc:   auth.NewService(client, store),
		customers: customer.NewService(client),
		payments:  payment.NewCollector(client),
	}
	c.flow = booking.NewFlow(client,
		config.AppConfig.TestPageSize,
		config.AppConfig.SearchRatePerSec,
		c.collectPayment)

	fmt.Println("labdesk booking console. Type 'help' for commands.")
	if sess := store.Current(); sess != nil {
		fmt.Printf("Signed in as %s (%s)\n", sess.Name, sess.Role)
	}
	c.run()
}

func (c *console) run() {
	for {
		fmt.Print("> ")
		if !c.in.Scan() {
			return
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		ctx := context.Background()
		switch cmd {
		case "help":
			c.help()
		case "login":
			c.login(ctx, args)
		case "logout":
			if err := c.authSvc.Logout(); err != nil {
				fmt.Println("Error:", err)
			}
		case "search":
			c.search(ctx, strings.Join(args, " "))
		case "pick":
			c.pick(ctx, args)
		case "new-customer":
			c.newCustomer(ctx, args)
		case "clear-customer":
			if err := c.flow.ClearCustomer(ctx); err != nil {
				fmt.Println("Failed to load tests:", api.ErrorMessage(err, "Failed to load tests"))
			}
		case "tests":
			c.showTests()
		case "more":
			if err := c.flow.Catalog.LoadMore(ctx); err != nil {
				fmt.Println(api.ErrorMessage(err, "Failed to load more tests"))
			} else {
				c.showTests()
			}
		case "toggle":
			c.toggle(args)
		case "date":
			c.setDate(args)
		case "time":
			c.setTime(args)
		case "discount":
			c.setDiscount(args)
		case "preview":
			c.preview(ctx)
		case "summary":
			c.summary()
		case "submit":
			c.submit(ctx)
		case "refund":
			c.refund(ctx, args)
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help'.")
		}
	}
}

func (c *console) help() {
	fmt.Print(`Commands:
  login <email> <password>       sign in
  logout                         sign out
  search <text>                  search customers
  pick <customer-id>             select a customer from results
  new-customer <name> <phone>    create and select a customer
  clear-customer                 drop the selected customer
  tests                          show the loaded test catalog
  more                           load the next catalog page
  toggle <test-id>               select or deselect a test
  date <YYYY-MM-DD>              set booking date
  time <HH:MM>                   set booking time
  discount <FLAT|PERCENTAGE|NONE> [value]
  preview                        server-side discount preview
  summary                        show the draft
  submit                         create the booking
  refund <booking-no> <amount> <CASH|ONLINE> [reference]
  quit
`)
}

func (c *console) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: login <email> <password>")
		return
	}
	sess, err := c.authSvc.Login(ctx, args[0], args[1])
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Login failed"))
		return
	}
	fmt.Printf("Signed in as %s (%s)\n", sess.Name, sess.Role)
	if sess.Role != "" && sess.Role != "RECEPTIONIST" {
		fmt.Println("Note: booking creation is a receptionist screen; other roles are read-only here.")
	}
}

func (c *console) search(ctx context.Context, query string) {
	c.query = query
	results, err := c.flow.Resolver.Search(ctx, query)
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Search failed"))
		return
	}
	if !c.flow.Resolver.SearchPerformed() {
		return
	}
	if len(results) == 0 {
		fmt.Println("No customer found")
		return
	}
	for _, cust := range results {
		branch := "-"
		if cust.BranchID != nil {
			branch = strconv.Itoa(*cust.BranchID)
		}
		fmt.Printf("  [%d] %s  %s  branch %s\n", cust.ID, cust.Name, cust.Phone, branch)
	}
}

func (c *console) pick(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: pick <customer-id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Customer id must be a number")
		return
	}
	cust, ok := c.flow.Resolver.Select(id)
	if !ok {
		fmt.Println("No such customer in the current results")
		return
	}
	c.query = ""
	if err := c.flow.SelectCustomer(ctx, cust); err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to load tests"))
	}
	fmt.Printf("Selected %s (%s)\n", cust.Name, cust.Phone)
}

func (c *console) newCustomer(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: new-customer <name> <phone>")
		return
	}
	phone := args[len(args)-1]
	name := strings.Join(args[:len(args)-1], " ")
	cust, err := c.customers.Create(ctx, models.CustomerInput{Name: name, Phone: phone})
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to create customer"))
		return
	}
	if err := c.flow.SelectCustomer(ctx, cust); err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to load tests"))
	}
	fmt.Printf("Created and selected %s (#%d)\n", cust.Name, cust.ID)
}

func (c *console) showTests() {
	items := c.flow.Catalog.Items()
	if len(items) == 0 {
		fmt.Println("No tests loaded. Select a customer first.")
		return
	}
	for _, t := range items {
		mark := " "
		if c.flow.Draft.HasTest(t.ID) {
			mark = "x"
		}
		fmt.Printf("  [%s] %d  %-32s %s\n", mark, t.ID, t.Name, utils.FormatAmount(t.Price.Float64()))
	}
	if c.flow.Catalog.HasMore() {
		fmt.Println("  ('more' to load the next page)")
	} else {
		fmt.Println("  (no more tests)")
	}
}

func (c *console) toggle(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: toggle <test-id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Test id must be a number")
		return
	}
	if c.flow.Draft.ToggleTest(id) {
		fmt.Println("Selected test", id)
	} else {
		fmt.Println("Deselected test", id)
	}
}

func (c *console) setDate(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: date <YYYY-MM-DD>")
		return
	}
	t, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		fmt.Println("Date must be YYYY-MM-DD")
		return
	}
	c.flow.Draft.SetDate(t)
}

func (c *console) setTime(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: time <HH:MM>")
		return
	}
	t, err := time.Parse("15:04", args[0])
	if err != nil {
		fmt.Println("Time must be HH:MM")
		return
	}
	c.flow.Draft.SetTime(t.Hour(), t.Minute())
}

func (c *console) setDiscount(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: discount <FLAT|PERCENTAGE|NONE> [value]")
		return
	}
	var discountType models.DiscountType
	switch strings.ToUpper(args[0]) {
	case "FLAT":
		discountType = models.DiscountFlat
	case "PERCENTAGE":
		discountType = models.DiscountPercentage
	case "NONE":
		discountType = models.DiscountNone
	default:
		fmt.Println("Discount type must be FLAT, PERCENTAGE or NONE")
		return
	}
	value := 0.0
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil || v < 0 {
			fmt.Println("Discount value must be a non-negative number")
			return
		}
		value = v
	}
	c.flow.Draft.SetDiscount(discountType, value)
}

func (c *console) preview(ctx context.Context) {
	preview, err := c.flow.Previewer.Preview(ctx, c.flow.Draft, c.flow.Catalog)
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to calculate discount"))
		return
	}
	fmt.Printf("Original %s  Discount -%s  Final %s\n",
		utils.FormatAmount(preview.OriginalAmount),
		utils.FormatAmount(preview.DiscountAmount),
		utils.FormatAmount(preview.FinalAmount))
}

func (c *console) summary() {
	draft := c.flow.Draft
	if cust := draft.Customer(); cust != nil {
		fmt.Printf("Customer: %s (%s)\n", cust.Name, cust.Phone)
	} else {
		fmt.Println("Customer: none")
	}
	fmt.Printf("Tests: %v\n", draft.SelectedTestIDs())
	if d := draft.Date(); d != nil {
		fmt.Println("Date:", utils.FormatLocalDate(*d))
	}
	if clock := draft.Clock(); clock != nil {
		fmt.Println("Time:", utils.FormatShortClock(clock.Hour, clock.Minute))
	}
	if discountType, value := draft.Discount(); discountType != models.DiscountNone {
		fmt.Printf("Discount: %s %v\n", discountType, value)
	}
	if preview := draft.Preview(); preview != nil {
		fmt.Println("Previewed final:", utils.FormatAmount(preview.FinalAmount))
	}
	fmt.Println("State:", draft.State())
}

func (c *console) submit(ctx context.Context) {
	bookingNumber, err := c.flow.Submit(ctx)
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to create booking"))
		return
	}
	fmt.Println("Booking created:", bookingNumber)
}

// collectPayment is the post-booking handoff: prompt for an immediate
// payment against the fresh booking. Declining is a normal outcome.
func (c *console) collectPayment(bookingNumber string) error {
	fmt.Printf("Collect payment for %s now? amount mode(CASH|ONLINE) [proof-path], or blank to skip: ", bookingNumber)
	if !c.in.Scan() {
		return nil
	}
	fields := strings.Fields(strings.TrimSpace(c.in.Text()))
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 2 {
		fmt.Println("Need amount and mode; skipping payment")
		return nil
	}
	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		fmt.Println("Invalid amount; skipping payment")
		return nil
	}
	input := models.PaymentInput{
		BookingNumber: bookingNumber,
		Amount:        amount,
		Mode:          models.PaymentMode(strings.ToUpper(fields[1])),
		PaymentDate:   time.Now(),
	}
	if len(fields) > 2 {
		input.ProofPath = fields[2]
	}
	if err := c.payments.Collect(context.Background(), input); err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to create payment"))
		return err
	}
	fmt.Println("Payment added successfully")
	return nil
}

func (c *console) refund(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Println("Usage: refund <booking-no> <amount> <CASH|ONLINE> [reference]")
		return
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("Invalid amount")
		return
	}
	input := models.RefundInput{
		BookingNumber: args[0],
		Amount:        amount,
		RefundMode:    models.PaymentMode(strings.ToUpper(args[2])),
	}
	if len(args) > 3 {
		input.ReferenceNo = args[3]
	}
	if err := c.payments.Refund(ctx, input); err != nil {
		fmt.Println(api.ErrorMessage(err, "Failed to create refund"))
		return
	}
	fmt.Println("Refund recorded")
}
