package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the lexgap ASCII banner with its version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Amber-to-sky gradient, matching the outcome palette.
	s1 := termenv.String("  _                                ").Foreground(p.Color("#f59e0b"))
	s2 := termenv.String(" | | _____  ____ _  __ _ _ __      ").Foreground(p.Color("#fbbf24"))
	s3 := termenv.String(" | |/ _ \\ \\/ / _` |/ _` | '_ \\   ").Foreground(p.Color("#a3e635"))
	s4 := termenv.String(" | |  __/>  < (_| | (_| | |_) |    ").Foreground(p.Color("#34d399"))
	s5 := termenv.String(" |_|\\___/_/\\_\\__, |\\__,_| .__/ ").Foreground(p.Color("#38bdf8"))
	s6 := termenv.String("             |___/      |_|        ").Foreground(p.Color("#0ea5e9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Printf("  legislation gap triage  v%s\n\n", version)
}
