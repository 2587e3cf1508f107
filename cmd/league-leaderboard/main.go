package main

import "github.com/pfrederiksen/league-leaderboard/internal/cli"

func main() {
	cli.Execute()
}
