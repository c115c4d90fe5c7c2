package main

import "github.com/bananaltda/BRS-ReservationService/internal/cli"

func main() {
	cli.Execute()
}
