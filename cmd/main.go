package main

import "github.com/pvoronin/taskboard/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenSQLite()
	defer app.CloseSQLite()

	app.MustListenAndServeHTTP()
}
