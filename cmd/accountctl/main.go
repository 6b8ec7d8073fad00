package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/amankou/farmauth/internal/client/api"
	"github.com/amankou/farmauth/internal/client/cli"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: accountctl [-a address] register|login")
}

func main() {

	addr := flag.String("a", "http://localhost:8080", "account service address")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	app := cli.NewApp(api.NewClient(*addr), os.Stdin, os.Stdout)

	var err error
	switch flag.Arg(0) {
	case "register":
		err = app.Register(ctx)
	case "login":
		err = app.Login(ctx)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}

}
