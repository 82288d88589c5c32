package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bookrun/internal/games/bookrun"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Print the dialogue",
	Args:  cobra.NoArgs,
	Run:   runStory,
}

var (
	speakerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	endingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runStory(cmd *cobra.Command, args []string) {
	speaker := bookrun.AvatarMiriam
	for i := range bookrun.Story {
		if i == bookrun.EndingLine {
			fmt.Println(endingStyle.Render("(after every book is delivered)"))
			speaker = bookrun.AvatarMiriam
		}
		fmt.Printf("%s %s\n", speakerStyle.Render(fmt.Sprintf("%-7s", speaker.String()+":")),
			strings.Join(bookrun.Line(i), " "))
		speaker = speaker.Other()
	}
}
