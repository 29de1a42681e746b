package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/progress"
	"github.com/papapumpkin/roster/internal/telemetry"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage lane role assignments",
	Long: `Assigns lane roles to champions independently of played state.

Valid roles: ` + strings.Join(progress.Roles, ", ") + `.`,
}

var roleAddCmd = &cobra.Command{
	Use:   "add <champion-id> <role>",
	Short: "Assign a lane role to a champion",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRole(cmd, args[0], args[1], "add")
	},
}

var roleRemoveCmd = &cobra.Command{
	Use:   "remove <champion-id> <role>",
	Short: "Remove a lane role from a champion",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRole(cmd, args[0], args[1], "remove")
	},
}

var roleToggleCmd = &cobra.Command{
	Use:   "toggle <champion-id> <role>",
	Short: "Toggle a lane role on a champion",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRole(cmd, args[0], args[1], "toggle")
	},
}

var roleListCmd = &cobra.Command{
	Use:   "list <champion-id>",
	Short: "Show a champion's assigned lane roles",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoleList,
}

func init() {
	roleCmd.AddCommand(roleAddCmd)
	roleCmd.AddCommand(roleRemoveCmd)
	roleCmd.AddCommand(roleToggleCmd)
	roleCmd.AddCommand(roleListCmd)
	rootCmd.AddCommand(roleCmd)
}

func editRole(cmd *cobra.Command, id, rawRole, op string) error {
	role := strings.ToUpper(rawRole)
	if !progress.KnownRole(role) {
		return fmt.Errorf("unknown role %q (want one of %s)", rawRole, strings.Join(progress.Roles, ", "))
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var ok bool
	switch op {
	case "add":
		ok = s.repo.AddRole(id, role)
	case "remove":
		ok = s.repo.RemoveRole(id, role)
	case "toggle":
		ok = s.repo.ToggleRole(id, role)
	}
	if !ok {
		err := fmt.Errorf("failed to persist roles for %q", id)
		s.printer.Error(err.Error())
		return err
	}
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindRoleChanged,
		Champion:  id,
		Data:      map[string]any{"op": op, "role": role},
	})
	s.printer.Info(fmt.Sprintf("%s: %s", id, strings.Join(s.repo.Roles(id), ", ")))
	return nil
}

func runRoleList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	roles := s.repo.Roles(args[0])
	if len(roles) == 0 {
		s.printer.Info(fmt.Sprintf("%s: no roles assigned", args[0]))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(roles, ", "))
	return nil
}
