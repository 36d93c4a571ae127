// Package main is the entry point for the lolimpact CLI tool, which ingests
// League of Legends match-history spreadsheet exports and computes per-player
// impact scores.
package main

import "github.com/teamdot/go-lol-impact/cmd"

func main() {
	cmd.Execute()
}
