// Package cli implements the interactive accountctl commands: prompting for
// credentials and calling the account service's HTTP API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/amankou/farmauth/internal/client/api"
)

type App struct {
	client *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(client *api.Client, in io.Reader, out io.Writer) *App {
	return &App{
		client: client,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (a *App) promptCredentials() (string, string, error) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

// Register prompts for credentials and creates an account.
func (a *App) Register(ctx context.Context) error {

	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	envelope, err := a.client.Register(ctx, username, password)
	if err != nil {
		return err
	}

	if !envelope.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", envelope.Msg)
		return nil
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and prints the issued session token.
func (a *App) Login(ctx context.Context) error {

	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	envelope, token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if !envelope.Success {
		fmt.Fprintf(a.out, "Login failed: %s\n", envelope.Msg)
		return nil
	}

	fmt.Fprintf(a.out, "Login successful\ntoken: %s\n", token)
	return nil
}
