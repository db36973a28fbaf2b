package main

import "stockpulse_backend/internal/app"

func main() {
	app.Run()
}
