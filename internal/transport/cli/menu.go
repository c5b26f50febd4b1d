package cli

import (
	"errors"
	"fmt"
	"io"

	"bonuscalc/internal/domain/accounts"
	"bonuscalc/internal/domain/bonus"
	"bonuscalc/internal/domain/reports"
)

// App drives the console session over the accounts and reports services.
type App struct {
	svc     *accounts.Service
	reports *reports.Service
	prompt  *Prompter
	out     io.Writer
}

func NewApp(svc *accounts.Service, reports *reports.Service, in io.Reader, out io.Writer) *App {
	return &App{
		svc:     svc,
		reports: reports,
		prompt:  NewPrompter(in, out),
		out:     out,
	}
}

// Run loops the top-level menu until the user exits or input ends.
func (a *App) Run() {
	for {
		fmt.Fprintln(a.out, "\n-- Bonus Calculation System --")
		fmt.Fprintln(a.out, "1. Log in")
		fmt.Fprintln(a.out, "2. Register")
		fmt.Fprintln(a.out, "0. Exit")

		switch a.prompt.Int("Choose an action: ", 0, 2) {
		case 1:
			a.login()
		case 2:
			a.register()
		case 0:
			fmt.Fprintln(a.out, "Goodbye.")
			return
		}
	}
}

func (a *App) login() {
	fmt.Fprintln(a.out, "\n-- Log in --")
	username := a.prompt.Line("Username: ")
	password := a.prompt.Password("Password: ")

	account, err := a.svc.Authenticate(username, password)
	if err != nil {
		// Uniform message: wrong password and unapproved account are
		// indistinguishable on purpose.
		fmt.Fprintln(a.out, "Authentication failed.")
		return
	}

	fmt.Fprintf(a.out, "\nWelcome, %s!\n", account.FullName)
	if account.IsAdmin() {
		a.adminMenu()
	} else {
		a.employeeMenu(account)
	}
}

func (a *App) register() {
	fmt.Fprintln(a.out, "\n-- Registration --")
	username := a.prompt.ValidatedLine("Username: ", func(s string) error {
		if err := ValidateUsername(s); err != nil {
			return err
		}
		if a.svc.UsernameExists(s) {
			return accounts.ErrUsernameTaken
		}
		return nil
	})
	password := a.prompt.ValidatedLine("Password: ", ValidatePassword)
	fullName := a.prompt.ValidatedLine("Full name: ", ValidateFullName)
	department := a.prompt.ValidatedLine("Department: ", ValidateDepartment)
	position := a.prompt.ValidatedLine("Position: ", ValidatePosition)

	if err := a.svc.Register(username, password, fullName, department, position); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "\nRegistration submitted. Wait for admin approval.")
}

func (a *App) adminMenu() {
	for {
		fmt.Fprintln(a.out, "\n-- Admin panel --")
		fmt.Fprintln(a.out, "1. Manage accounts")
		fmt.Fprintln(a.out, "2. View data")
		fmt.Fprintln(a.out, "3. Edit employee data")
		fmt.Fprintln(a.out, "4. Bonus review")
		fmt.Fprintln(a.out, "5. Configure bonus formula")
		fmt.Fprintln(a.out, "6. Export bonus review to PDF")
		fmt.Fprintln(a.out, "0. Log out")

		switch a.prompt.Int("Choose an action: ", 0, 6) {
		case 1:
			a.manageAccountsMenu()
		case 2:
			a.viewDataMenu()
		case 3:
			a.editEmployee()
		case 4:
			a.bonusReview()
		case 5:
			a.formulaMenu()
		case 6:
			a.exportBonusReview()
		case 0:
			return
		}
	}
}

func (a *App) manageAccountsMenu() {
	for {
		fmt.Fprintln(a.out, "\n-- Account management --")
		fmt.Fprintln(a.out, "1. Approve registrations")
		fmt.Fprintln(a.out, "2. Add employee")
		fmt.Fprintln(a.out, "3. Delete employee")
		fmt.Fprintln(a.out, "0. Back")

		switch a.prompt.Int("Choose an action: ", 0, 3) {
		case 1:
			a.approveRegistrations()
		case 2:
			a.addEmployee()
		case 3:
			a.deleteEmployee()
		case 0:
			return
		}
	}
}

func (a *App) approveRegistrations() {
	pending := a.svc.Store().Pending()
	if len(pending) == 0 {
		fmt.Fprintln(a.out, "No registrations to approve.")
		return
	}
	fmt.Fprintln(a.out, "\n-- Pending registrations --")
	renderPendingTable(a.out, pending)

	index := a.prompt.Int("Registration number to approve (0 to cancel): ", 0, len(pending))
	if index == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	candidate := pending[index-1]
	fmt.Fprintf(a.out, "\nEmployment details for %s:\n", candidate.FullName)

	salary := a.prompt.Float("Salary: ", 0, 1000000)
	hireDate := a.promptHireDate()
	kpi := a.promptKPI()

	fmt.Fprintf(a.out, "\nFull name:  %s\n", candidate.FullName)
	fmt.Fprintf(a.out, "Department: %s\n", candidate.Department)
	fmt.Fprintf(a.out, "Position:   %s\n", candidate.Position)
	fmt.Fprintf(a.out, "Salary:     %.2f\n", salary)
	fmt.Fprintf(a.out, "Hire date:  %s\n", hireDate)
	fmt.Fprintf(a.out, "KPI:        %s (aggregate %.0f%%)\n", kpi, kpi.Total())

	if a.prompt.Int("Confirm (1 - yes, 0 - no): ", 0, 1) != 1 {
		fmt.Fprintln(a.out, "Approval cancelled.")
		return
	}
	if _, err := a.svc.ApproveRegistration(index, salary, hireDate, kpi); err != nil {
		a.reportError("approve registration", err)
		return
	}
	fmt.Fprintln(a.out, "Employee approved and added.")
}

func (a *App) addEmployee() {
	fmt.Fprintln(a.out, "\n-- Add employee --")
	username := a.prompt.ValidatedLine("Username: ", func(s string) error {
		if err := ValidateUsername(s); err != nil {
			return err
		}
		if a.svc.UsernameExists(s) {
			return accounts.ErrUsernameTaken
		}
		return nil
	})
	password := a.prompt.ValidatedLine("Password: ", ValidatePassword)
	fullName := a.prompt.ValidatedLine("Full name: ", ValidateFullName)
	department := a.prompt.ValidatedLine("Department: ", ValidateDepartment)
	position := a.prompt.ValidatedLine("Position: ", ValidatePosition)
	salary := a.prompt.Float("Salary: ", 0, 1000000)
	hireDate := a.promptHireDate()
	kpi := a.promptKPI()

	if _, err := a.svc.AddEmployee(username, password, fullName, department, position, salary, hireDate, kpi); err != nil {
		a.reportError("add employee", err)
		return
	}
	fmt.Fprintln(a.out, "Employee added.")
}

func (a *App) deleteEmployee() {
	employees := a.svc.Store().Employees()
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees to delete.")
		return
	}
	renderEmployeeTable(a.out, employees, a.svc.Formula())

	index := a.prompt.Int("Employee number to delete (0 to cancel): ", 0, len(employees))
	if index == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.svc.DeleteEmployee(index); err != nil {
		a.reportError("delete employee", err)
		return
	}
	fmt.Fprintln(a.out, "Employee deleted.")
}

func (a *App) viewDataMenu() {
	for {
		fmt.Fprintln(a.out, "\n-- View data --")
		fmt.Fprintln(a.out, "1. Employee details")
		fmt.Fprintln(a.out, "2. Search employees")
		fmt.Fprintln(a.out, "3. Sort employees")
		fmt.Fprintln(a.out, "4. List all employees")
		fmt.Fprintln(a.out, "0. Back")

		switch a.prompt.Int("Choose an action: ", 0, 4) {
		case 1:
			a.viewEmployeeDetails()
		case 2:
			a.searchEmployees()
		case 3:
			a.sortEmployees()
		case 4:
			a.listEmployees()
		case 0:
			return
		}
	}
}

func (a *App) viewEmployeeDetails() {
	employees := a.svc.Store().Employees()
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees to view.")
		return
	}
	renderEmployeeTable(a.out, employees, a.svc.Formula())

	index := a.prompt.Int("Employee number (0 to cancel): ", 0, len(employees))
	if index == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	a.printEmployeeDetails(employees[index-1])
}

func (a *App) printEmployeeDetails(emp *accounts.Account) {
	formula := a.svc.Formula()
	fmt.Fprintln(a.out, "\n-- Employee details --")
	fmt.Fprintf(a.out, "Full name:  %s\n", emp.FullName)
	fmt.Fprintf(a.out, "Username:   %s\n", emp.Username)
	fmt.Fprintf(a.out, "Department: %s\n", emp.Department)
	fmt.Fprintf(a.out, "Position:   %s\n", emp.Position)
	fmt.Fprintf(a.out, "Salary:     %.2f\n", emp.Salary)
	fmt.Fprintf(a.out, "Hire date:  %s\n", emp.HireDate)
	fmt.Fprintf(a.out, "Experience: %d years\n", emp.Experience())
	fmt.Fprintf(a.out, "KPI:        %s\n", emp.KPI)
	fmt.Fprintf(a.out, "Total KPI:  %.0f%%\n", emp.KPI.Total())
	fmt.Fprintf(a.out, "Bonus:      %.2f\n", emp.Bonus(formula))
}

func (a *App) searchEmployees() {
	if len(a.svc.Store().Employees()) == 0 {
		fmt.Fprintln(a.out, "No employees to search.")
		return
	}
	fmt.Fprintln(a.out, "\n-- Search employees --")
	fmt.Fprintln(a.out, "1. By full name")
	fmt.Fprintln(a.out, "2. By position")
	fmt.Fprintln(a.out, "3. By department")
	fmt.Fprintln(a.out, "0. Cancel")

	choice := a.prompt.Int("Choose the search field: ", 0, 3)
	if choice == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	term := a.prompt.Line("Search term: ")

	results := a.svc.Search(accounts.SearchField(choice), term)
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No employees found.")
		return
	}
	fmt.Fprintln(a.out, "\nSearch results:")
	renderEmployeeTable(a.out, results, a.svc.Formula())
}

func (a *App) sortEmployees() {
	if len(a.svc.Store().Employees()) == 0 {
		fmt.Fprintln(a.out, "No employees to sort.")
		return
	}
	fmt.Fprintln(a.out, "\n-- Sort employees --")
	fmt.Fprintln(a.out, "1. By full name")
	fmt.Fprintln(a.out, "2. By bonus (highest first)")
	fmt.Fprintln(a.out, "3. By experience (longest first)")
	fmt.Fprintln(a.out, "4. By department")
	fmt.Fprintln(a.out, "0. Cancel")

	choice := a.prompt.Int("Choose the sort key: ", 0, 4)
	if choice == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	sorted := a.svc.SortedEmployees(accounts.SortKey(choice))
	fmt.Fprintln(a.out, "\nSorted list:")
	renderEmployeeTable(a.out, sorted, a.svc.Formula())
}

func (a *App) listEmployees() {
	employees := a.svc.Store().Employees()
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees in the system.")
		return
	}
	fmt.Fprintln(a.out, "\nAll employees:")
	renderEmployeeTable(a.out, employees, a.svc.Formula())
}

func (a *App) editEmployee() {
	employees := a.svc.Store().Employees()
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees to edit.")
		return
	}
	renderEmployeeTable(a.out, employees, a.svc.Formula())

	index := a.prompt.Int("Employee number to edit (0 to cancel): ", 0, len(employees))
	if index == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	emp := employees[index-1]

	for {
		fmt.Fprintf(a.out, "\n-- Editing: %s --\n", emp.FullName)
		fmt.Fprintln(a.out, "1. Full name")
		fmt.Fprintln(a.out, "2. KPI scores")
		fmt.Fprintln(a.out, "3. Salary")
		fmt.Fprintln(a.out, "4. Hire date")
		fmt.Fprintln(a.out, "5. Department and position")
		fmt.Fprintln(a.out, "0. Back")

		switch a.prompt.Int("Choose a field: ", 0, 5) {
		case 1:
			name := a.prompt.ValidatedLine("New full name: ", ValidateFullName)
			if err := a.svc.UpdateFullName(emp, name); err != nil {
				a.reportError("update full name", err)
				continue
			}
			fmt.Fprintln(a.out, "Full name updated.")
		case 2:
			fmt.Fprintf(a.out, "Current KPI: %s\n", emp.KPI)
			kpi := a.promptKPI()
			if err := a.svc.UpdateKPI(emp, kpi); err != nil {
				a.reportError("update KPI", err)
				continue
			}
			fmt.Fprintln(a.out, "KPI updated.")
		case 3:
			salary := a.prompt.Float("New salary: ", 0, 1000000)
			if err := a.svc.UpdateSalary(emp, salary); err != nil {
				a.reportError("update salary", err)
				continue
			}
			fmt.Fprintln(a.out, "Salary updated.")
		case 4:
			fmt.Fprintf(a.out, "Current hire date: %s\n", emp.HireDate)
			hireDate := a.promptHireDate()
			if err := a.svc.UpdateHireDate(emp, hireDate); err != nil {
				a.reportError("update hire date", err)
				continue
			}
			fmt.Fprintln(a.out, "Hire date updated.")
		case 5:
			department := a.prompt.ValidatedLine("New department: ", ValidateDepartment)
			position := a.prompt.ValidatedLine("New position: ", ValidatePosition)
			if err := a.svc.UpdateDepartmentPosition(emp, department, position); err != nil {
				a.reportError("update department and position", err)
				continue
			}
			fmt.Fprintln(a.out, "Department and position updated.")
		case 0:
			return
		}
	}
}

func (a *App) bonusReview() {
	review := a.svc.BonusReview()
	if len(review.Rows) == 0 {
		fmt.Fprintln(a.out, "No employees to review.")
		return
	}
	a.printFormula()

	fmt.Fprintln(a.out, "\nBonus breakdown:")
	renderReviewTable(a.out, review)

	fmt.Fprintln(a.out, "\nStatistics:")
	fmt.Fprintf(a.out, "Total bonuses:   %.2f\n", review.Total)
	fmt.Fprintf(a.out, "Average bonus:   %.2f\n", review.Average)
	fmt.Fprintf(a.out, "Highest bonus:   %.2f (%s)\n", review.Max, review.Best)
	fmt.Fprintf(a.out, "Lowest bonus:    %.2f (%s)\n", review.Min, review.Worst)

	if len(review.NeedsImprovement) == 0 {
		fmt.Fprintln(a.out, "\nAll employees have healthy KPI scores.")
		return
	}
	fmt.Fprintln(a.out, "\nRecommendations:")
	for _, name := range review.NeedsImprovement {
		fmt.Fprintf(a.out, "- %s: KPI below %.0f%%, improvement needed\n", name, bonus.LowKPIThreshold)
	}
}

func (a *App) exportBonusReview() {
	review := a.svc.BonusReview()
	if len(review.Rows) == 0 {
		fmt.Fprintln(a.out, "No employees to report on.")
		return
	}
	path, err := a.reports.ExportBonusReview(review, a.svc.Formula())
	if err != nil {
		a.reportError("export bonus review", err)
		return
	}
	fmt.Fprintf(a.out, "Report written to %s\n", path)
}

func (a *App) printFormula() {
	f := a.svc.Formula()
	fmt.Fprintln(a.out, "\n-- Bonus formula --")
	fmt.Fprintln(a.out, "bonus = salary * (kpiBonus + experienceBonus)")
	fmt.Fprintf(a.out, "  kpiBonus        = (KPI / 100) * %g\n", f.KPICoefficient)
	fmt.Fprintf(a.out, "  experienceBonus = min(years * %g, %g)\n", f.ExperienceCoefficient, f.MaxExperienceBonus)
}

func (a *App) formulaMenu() {
	for {
		a.printFormula()
		fmt.Fprintln(a.out, "\n1. Change KPI coefficient")
		fmt.Fprintln(a.out, "2. Change experience coefficient")
		fmt.Fprintln(a.out, "3. Change maximum experience bonus")
		fmt.Fprintln(a.out, "4. Reset to defaults")
		fmt.Fprintln(a.out, "5. Example calculation")
		fmt.Fprintln(a.out, "0. Back")

		switch a.prompt.Int("Choose an action: ", 0, 5) {
		case 1:
			value := a.prompt.Float("New KPI coefficient (0.0 - 1.0): ", 0, 1)
			if err := a.svc.SetKPICoefficient(value); err != nil {
				a.reportError("save formula", err)
				continue
			}
			fmt.Fprintln(a.out, "KPI coefficient updated.")
		case 2:
			value := a.prompt.Float("New experience coefficient (0.0 - 0.1): ", 0, 0.1)
			if err := a.svc.SetExperienceCoefficient(value); err != nil {
				a.reportError("save formula", err)
				continue
			}
			fmt.Fprintln(a.out, "Experience coefficient updated.")
		case 3:
			value := a.prompt.Float("New maximum experience bonus (0.0 - 0.5): ", 0, 0.5)
			if err := a.svc.SetMaxExperienceBonus(value); err != nil {
				a.reportError("save formula", err)
				continue
			}
			fmt.Fprintln(a.out, "Maximum experience bonus updated.")
		case 4:
			if err := a.svc.ResetFormula(); err != nil {
				a.reportError("save formula", err)
				continue
			}
			fmt.Fprintln(a.out, "Formula reset to defaults.")
		case 5:
			a.exampleCalculation()
		case 0:
			return
		}
	}
}

func (a *App) exampleCalculation() {
	fmt.Fprintln(a.out, "\n-- Example calculation --")
	salary := a.prompt.Float("Salary: ", 0, 1000000)
	kpi := a.prompt.Float("Aggregate KPI (%): ", 0, 100)
	years := a.prompt.Int("Experience (years): ", 0, 50)

	breakdown := a.svc.Formula().Explain(salary, kpi, years)
	fmt.Fprintf(a.out, "\nKPI bonus:        %.2f\n", breakdown.KPIBonus)
	fmt.Fprintf(a.out, "Experience bonus: %.2f\n", breakdown.ExperienceBonus)
	fmt.Fprintf(a.out, "Total bonus:      %.2f\n", breakdown.Total)
	if salary > 0 {
		fmt.Fprintf(a.out, "Share of salary:  %.1f%%\n", breakdown.Total/salary*100)
	}
}

func (a *App) employeeMenu(account *accounts.Account) {
	for {
		fmt.Fprintln(a.out, "\n-- Employee panel --")
		fmt.Fprintln(a.out, "1. My details")
		fmt.Fprintln(a.out, "2. My KPI")
		fmt.Fprintln(a.out, "3. My bonus")
		fmt.Fprintln(a.out, "0. Log out")

		switch a.prompt.Int("Choose an action: ", 0, 3) {
		case 1:
			a.printEmployeeDetails(account)
		case 2:
			fmt.Fprintln(a.out, "\n-- My KPI --")
			fmt.Fprintf(a.out, "%s\n", account.KPI)
			fmt.Fprintf(a.out, "Aggregate: %.0f%%\n", account.KPI.Total())
		case 3:
			fmt.Fprintln(a.out, "\n-- My bonus --")
			fmt.Fprintf(a.out, "Calculated bonus: %.2f\n", account.Bonus(a.svc.Formula()))
		case 0:
			return
		}
	}
}

func (a *App) promptHireDate() accounts.HireDate {
	for {
		fmt.Fprintln(a.out, "Hire date:")
		year := a.prompt.Int("  Year: ", 1900, 2100)
		month := a.prompt.Int("  Month: ", 1, 12)
		day := a.prompt.Int("  Day: ", 1, 31)
		if err := ValidateDate(day, month, year); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			continue
		}
		return accounts.HireDate{Day: day, Month: month, Year: year}
	}
}

func (a *App) promptKPI() bonus.KPI {
	fmt.Fprintln(a.out, "KPI scores, 0 to 100%:")
	for {
		kpi := bonus.KPI{
			ProjectCompletion: a.prompt.Float("  Project completion (%): ", 0, 100),
			CodeQuality:       a.prompt.Float("  Code quality (%): ", 0, 100),
			Teamwork:          a.prompt.Float("  Teamwork (%): ", 0, 100),
			Innovation:        a.prompt.Float("  Innovation (%): ", 0, 100),
		}
		if err := errors.Join(
			ValidateKPIScore(kpi.ProjectCompletion),
			ValidateKPIScore(kpi.CodeQuality),
			ValidateKPIScore(kpi.Teamwork),
			ValidateKPIScore(kpi.Innovation),
		); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			continue
		}
		return kpi
	}
}

func (a *App) reportError(action string, err error) {
	switch {
	case errors.Is(err, accounts.ErrInvalidIndex):
		fmt.Fprintln(a.out, "Cancelled.")
	case errors.Is(err, accounts.ErrUsernameTaken):
		fmt.Fprintln(a.out, "A user with this username already exists.")
	default:
		// Persistence failures never roll back memory; the change stays.
		fmt.Fprintf(a.out, "Warning (%s): %v; the change is kept in memory\n", action, err)
	}
}
