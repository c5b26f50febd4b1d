package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"bonuscalc/internal/domain/accounts"
	"bonuscalc/internal/domain/bonus"
)

// renderEmployeeTable prints the numbered employee listing with aggregate
// KPI and computed bonus columns. The numbering is the 1-based index used by
// the view, edit and delete prompts.
func renderEmployeeTable(out io.Writer, employees []*accounts.Account, formula bonus.Formula) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Username", "Full name", "Department", "Position", "KPI", "Experience", "Bonus"})
	for i, emp := range employees {
		table.Append([]string{
			strconv.Itoa(i + 1),
			emp.Username,
			emp.FullName,
			emp.Department,
			emp.Position,
			fmt.Sprintf("%.0f%%", emp.KPI.Total()),
			fmt.Sprintf("%d y", emp.Experience()),
			fmt.Sprintf("%.2f", emp.Bonus(formula)),
		})
	}
	table.Render()
}

func renderPendingTable(out io.Writer, pending []*accounts.Account) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Username", "Full name", "Department", "Position"})
	for i, emp := range pending {
		table.Append([]string{
			strconv.Itoa(i + 1),
			emp.Username,
			emp.FullName,
			emp.Department,
			emp.Position,
		})
	}
	table.Render()
}

func renderReviewTable(out io.Writer, review bonus.Review) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Full name", "Salary", "KPI", "Experience", "Bonus"})
	for _, row := range review.Rows {
		table.Append([]string{
			row.Name,
			fmt.Sprintf("%.2f", row.Salary),
			fmt.Sprintf("%.0f%%", row.KPIScore),
			strconv.Itoa(row.Experience),
			fmt.Sprintf("%.2f", row.Bonus),
		})
	}
	table.Render()
}
