package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahayakai/sahayak/internal/history"
	"github.com/sahayakai/sahayak/internal/observe"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved generations",
}

var historyListCmd = &cobra.Command{
	Use:   "list [template-id]",
	Short: "List saved generations for a template, newest first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		templateID := parseTemplateID(args[0])

		s := getStore()
		defer s.Close()

		hist := history.NewStore(s, observe.New(os.Stderr, observe.Console, false))
		entries := hist.List(templateID)
		if len(entries) == 0 {
			fmt.Println("(no history)")
			return
		}
		for i, e := range entries {
			ts := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04")
			fmt.Printf("%2d. [%s] %s\n", i+1, ts, truncate(e.UserInput, 60))
		}
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [template-id] [index]",
	Short: "Show one saved generation in full",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		templateID := parseTemplateID(args[0])
		index, err := strconv.Atoi(args[1])
		if err != nil || index < 1 {
			fmt.Printf("Invalid index %q\n", args[1])
			os.Exit(1)
		}

		s := getStore()
		defer s.Close()

		hist := history.NewStore(s, observe.New(os.Stderr, observe.Console, false))
		entries := hist.List(templateID)
		if index > len(entries) {
			fmt.Printf("Index %d out of range (%d entries)\n", index, len(entries))
			os.Exit(1)
		}

		e := entries[index-1]
		fmt.Printf("Input: %s\n", e.UserInput)
		if e.SecondaryUserInput != "" {
			fmt.Printf("Secondary input: %s\n", e.SecondaryUserInput)
		}
		fmt.Printf("\n%s\n", e.Response)
		if e.ImageURI != "" {
			fmt.Printf("\n[visual aid: %d-byte data URI]\n", len(e.ImageURI))
		}
		if e.ImageError != "" {
			fmt.Printf("\n[visual aid unavailable: %s]\n", e.ImageError)
		}
		for _, v := range e.Videos {
			fmt.Printf("\nVideo: %s\n  %s\n", v.Title, v.URL)
		}
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear [template-id]",
	Short: "Delete all saved generations for a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		templateID := parseTemplateID(args[0])

		s := getStore()
		defer s.Close()

		hist := history.NewStore(s, observe.New(os.Stderr, observe.Console, false))
		hist.Clear(templateID)
		fmt.Printf("History cleared for template %d\n", templateID)
	},
}

func parseTemplateID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Printf("Invalid template id %q\n", arg)
		os.Exit(1)
	}
	return id
}

// truncate shortens s to at most n runes. Inputs are often Hindi or
// Telugu, so byte slicing would cut characters in half.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}
