package cmd

import (
	"context"
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// SessionsArchiveCmd archives or unarchives a session
type SessionsArchiveCmd struct {
	Force bool   `help:"Skip confirmation prompt" short:"f"`
	Name  string `arg:"" help:"Name of the session to archive/unarchive"`
}

// Run executes the archive command
func (s *SessionsArchiveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := cli.Container.SessionService.GetSession(ctx, s.Name)
	if err != nil {
		return fmt.Errorf("session not found: %w", err)
	}

	archiving := !session.IsArchived
	if archiving && !s.Force {
		fmt.Printf("Are you sure you want to archive session '%s'? (y/N): ", s.Name)
		if !confirmed() {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.SessionService.SetArchived(ctx, s.Name, archiving); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	if archiving {
		fmt.Printf("Session '%s' archived\n", s.Name)
	} else {
		fmt.Printf("Session '%s' unarchived\n", s.Name)
	}
	return nil
}

// SessionsDelCmd deletes a session
type SessionsDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the session to delete"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions del command", "session", s.Name, "force", s.Force)

	ctx := context.Background()
	if _, err := cli.Container.SessionService.GetSession(ctx, s.Name); err != nil {
		return fmt.Errorf("session not found: %w", err)
	}

	if !s.Force {
		fmt.Printf("WARNING: This will delete session '%s' (the worktree is left untouched)\n", s.Name)
		fmt.Print("\nContinue? (y/N): ")
		if !confirmed() {
			logging.Logger.Info("User cancelled session deletion", "session", s.Name)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.SessionService.DeleteSession(ctx, s.Name); err != nil {
		return err
	}

	fmt.Printf("Session '%s' deleted successfully\n", s.Name)
	return nil
}

// SessionsStateCmd moves a session between active and error
type SessionsStateCmd struct {
	Name  string `arg:"" help:"Name of the session"`
	State string `arg:"" help:"New state" enum:"active,error"`
}

// Run executes the state command
func (s *SessionsStateCmd) Run(cli *CLI) error {
	state := domain.SessionState(s.State)
	if err := cli.Container.SessionService.SetState(context.Background(), s.Name, state); err != nil {
		return err
	}
	fmt.Printf("Session '%s' is now %s\n", s.Name, state)
	return nil
}

func confirmed() bool {
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
