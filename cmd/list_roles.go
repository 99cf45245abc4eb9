package cmd

import (
	"sort"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

var listRolesCmd = &cobra.Command{
	Use:   "list-roles",
	Short: "List every ARIA role and which state attributes it admits",
	Long:  "Introspect the DomBridge role-admission tables and print, for every role that admits at least one state, which of checked/disabled/expanded/level/pressed/selected it accepts.",
	RunE:  runListRoles,
}

func init() {
	rootCmd.AddCommand(listRolesCmd)
}

func runListRoles(cmd *cobra.Command, args []string) error {
	seen := make(map[string]bool)
	for r := range ariadom.CheckedRoles {
		seen[r] = true
	}
	for r := range ariadom.DisabledRoles {
		seen[r] = true
	}
	for r := range ariadom.ExpandedRoles {
		seen[r] = true
	}
	for r := range ariadom.LevelRoles {
		seen[r] = true
	}
	for r := range ariadom.PressedRoles {
		seen[r] = true
	}
	for r := range ariadom.SelectedRoles {
		seen[r] = true
	}

	roles := make([]string, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Strings(roles)

	infos := make([]output.RoleInfo, 0, len(roles))
	for _, r := range roles {
		infos = append(infos, output.RoleInfo{
			Role:     r,
			Checked:  ariadom.CheckedRoles[r],
			Disabled: ariadom.DisabledRoles[r],
			Expanded: ariadom.ExpandedRoles[r],
			Level:    ariadom.LevelRoles[r],
			Pressed:  ariadom.PressedRoles[r],
			Selected: ariadom.SelectedRoles[r],
		})
	}

	return output.Print(output.RolesResult{Roles: infos})
}
