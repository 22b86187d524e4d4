// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/adapter"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	defaultServer = "localhost:8080"
)

var errUsage = errors.New("usage error")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *environment, args []string) error
}

func commands() []command {
	return []command{
		{"create-admin", "create the first admin account in an empty database", createAdmin},
		{"reset-password", "set a new password for an account", resetPassword},
		{"set-admin", "grant admin rights to an account, or revoke them with -revoke", setAdmin},
		{"stats", "show cycle progress from a running server", stats},
		{"health", "check that a running server and its database are up", health},
		{"version", "print build information of hoursctl and optionally a server", version},
	}
}

// run dispatches args to a command and returns the process exit code.
func run(ctx context.Context, env *environment, args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(env.stdout)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	for _, c := range commands() {
		if c.name != args[0] {
			continue
		}

		err := c.run(ctx, env, args[1:])
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		case errors.Is(err, errUsage):
			fmt.Fprintln(env.stdout, errorStyle.Render(err.Error()))
			return exitUsage
		default:
			for _, msg := range validators.Messages(err) {
				fmt.Fprintln(env.stdout, errorStyle.Render(msg))
			}
			env.logger.Debug().Err(err).Str("command", c.name).Msg("command failed")
			return exitError
		}
	}

	fmt.Fprintln(env.stdout, errorStyle.Render(fmt.Sprintf("unknown command %q", args[0])))
	printUsage(env.stdout)
	return exitUsage
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("hoursctl <command> [flags]"))
	b.WriteString("\n\n")
	for _, c := range commands() {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", c.name)), c.summary)
	}
	fmt.Fprint(w, b.String())
}

func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stdout)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return nil
}

type requiredFlag struct {
	name  string
	value string
}

// requireFlags reports every empty flag, in the order given.
func requireFlags(flags ...requiredFlag) error {
	var missing []string
	for _, f := range flags {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, "-"+f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required flags %s", errUsage, strings.Join(missing, ", "))
	}
	return nil
}

func createAdmin(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "create-admin")
	username := fs.String("username", "", "admin username")
	password := fs.String("password", "", "admin password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireFlags(requiredFlag{"username", *username}, requiredFlag{"password", *password}); err != nil {
		return err
	}

	services, closeFn, err := env.openService(ctx, env.logger)
	if err != nil {
		return err
	}
	defer closeFn()

	user, err := services.AuthService.CreateAdmin(ctx, models.Credentials{Username: *username, Password: *password})
	if err != nil {
		if errors.Is(err, service.ErrUsersAlreadyExist) {
			return errors.New("users already exist, promote an account from the admin page instead")
		}
		return err
	}

	fmt.Fprintln(env.stdout, successStyle.Render(fmt.Sprintf("Admin %s created (id %d).", user.Username, user.ID)))
	return nil
}

func resetPassword(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "reset-password")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "new password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireFlags(requiredFlag{"username", *username}, requiredFlag{"password", *password}); err != nil {
		return err
	}

	services, closeFn, err := env.openService(ctx, env.logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = services.UserService.ResetPasswordByUsername(ctx, *username, *password); err != nil {
		return err
	}

	fmt.Fprintln(env.stdout, successStyle.Render(fmt.Sprintf("Password for %s reset successfully.", strings.TrimSpace(*username))))
	return nil
}

func setAdmin(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "set-admin")
	username := fs.String("username", "", "account username")
	revoke := fs.Bool("revoke", false, "revoke admin rights instead of granting them")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireFlags(requiredFlag{"username", *username}); err != nil {
		return err
	}

	services, closeFn, err := env.openService(ctx, env.logger)
	if err != nil {
		return err
	}
	defer closeFn()

	user, err := services.UserService.SetAdminByUsername(ctx, *username, !*revoke)
	if err != nil {
		return err
	}

	state := "revoked from"
	if user.IsAdmin {
		state = "granted to"
	}
	fmt.Fprintln(env.stdout, successStyle.Render(fmt.Sprintf("Admin access %s %s.", state, user.Username)))
	return nil
}

func stats(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "stats")
	server := fs.String("server", defaultServer, "server address")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	dateValue := fs.String("date", "", "any day of the cycle, YYYY-MM-DD (default today)")
	timeout := fs.Duration("timeout", 15*time.Second, "request timeout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireFlags(requiredFlag{"username", *username}, requiredFlag{"password", *password}); err != nil {
		return err
	}

	day := time.Now()
	if *dateValue != "" {
		parsed, err := time.Parse(models.DateLayout, *dateValue)
		if err != nil {
			return fmt.Errorf("%w: invalid -date %q, use YYYY-MM-DD", errUsage, *dateValue)
		}
		day = parsed
	}

	client, err := env.newAdapter(adapter.Config{BaseURL: *server, Timeout: *timeout}, env.logger)
	if err != nil {
		return err
	}
	if err = client.Login(ctx, models.Credentials{Username: *username, Password: *password}); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return errors.New("invalid username or password")
		}
		return err
	}

	cycleStats, err := client.CycleStats(ctx, day)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.stdout, renderStats(cycleStats))
	return nil
}

func health(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "health")
	server := fs.String("server", defaultServer, "server address")
	timeout := fs.Duration("timeout", 5*time.Second, "request timeout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	client, err := env.newAdapter(adapter.Config{BaseURL: *server, Timeout: *timeout}, env.logger)
	if err != nil {
		return err
	}
	if err = client.Health(ctx); err != nil {
		return fmt.Errorf("server %s is unhealthy: %w", *server, err)
	}

	fmt.Fprintln(env.stdout, successStyle.Render(fmt.Sprintf("Server %s is healthy.", *server)))
	return nil
}

func version(ctx context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "version")
	server := fs.String("server", "", "also query the version of this server")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	rows := [][2]string{
		{"Build version", env.buildInfo.Version},
		{"Build date", env.buildInfo.Date},
		{"Build commit", env.buildInfo.Commit},
	}

	if *server != "" {
		client, err := env.newAdapter(adapter.Config{BaseURL: *server}, env.logger)
		if err != nil {
			return err
		}
		serverVersion, err := client.Version(ctx)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"Server version", serverVersion})
	}

	fmt.Fprintln(env.stdout, renderTable("hoursctl", rows))
	return nil
}
