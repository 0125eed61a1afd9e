package main

import (
	"os"

	"github.com/adanyl0v/go-task-tracker/internal/app"
)

func main() {
	a := app.New()
	a.MustReadEnv()
	a.MustInitApplicationLogger()
	a.MustOpenStorage()

	os.Exit(a.Run())
}
