package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates a new account on the catalog backend.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	input := models.RegisterInput{
		Username: cmd.String("username"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Info("registering account", "email", input.Email)

	message, err := r.account.Register(ctx, input)
	if err != nil {
		return err
	}

	r.writePlain("✓ Account created\n")
	if message != "" {
		r.writePlain("%s\n", message)
	}
	r.writePlain("Run 'gcf auth login' to start a session\n")
	return nil
}

// AuthLogin exchanges credentials for a token and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	input := models.LoginInput{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Info("logging in", "email", input.Email)

	token, err := r.account.Login(ctx, input)
	if err != nil {
		if errors.Is(err, shared.ErrAuthFailed) {
			r.writePlain("✗ %s\n", shared.MsgLoginFailed)
		}
		return err
	}

	if err := r.session.Login(token); err != nil {
		return fmt.Errorf("server returned an unusable credential: %w", err)
	}

	user := r.session.User()
	r.writePlain("✓ Logged in as %s\n", user.Email)
	return nil
}

// AuthLogout ends the session and clears the persisted credential.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.session.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.writePlain("✓ Logged out\n")
	return nil
}

// AuthStatus reports the current session state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.session.IsAuthenticated() {
		r.writePlain("✗ Not logged in\n")
		return nil
	}

	user := r.session.User()
	r.writePlain("✓ Logged in\n")
	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("User ID: %d\n", user.ID)
	return nil
}

// AuthReset requests a password reset email.
func (r *Runner) AuthReset(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")

	r.logger.Info("requesting password reset", "email", email)

	message, err := r.account.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}

	if message == "" {
		message = "If the address exists, a reset email is on its way"
	}
	r.writePlain("✓ %s\n", message)
	return nil
}
