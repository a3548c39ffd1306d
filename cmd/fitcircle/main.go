// Package main runs an interactive FitCircle session: it registers a member,
// posts to the community feed, fires due reminders, asks for a fitness goal
// and prints the personalized plan and progress report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fitcircle: %v\n", err)
		os.Exit(1)
	}
}

// options are the command line settings for a session.
type options struct {
	configDir string
	records   string
	username  string
	email     string
	password  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fitcircle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configDir, "config", ".", "Directory containing config.yaml")
	fs.StringVar(&opts.records, "records", "", "YAML file with training and diet records")
	fs.StringVar(&opts.username, "user", "member", "Username to register")
	fs.StringVar(&opts.email, "email", "member@fitcircle.example.com", "Email for the registered user")
	fs.StringVar(&opts.password, "password", "changeme", "Password for the registered user")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}
