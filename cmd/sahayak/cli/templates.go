package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahayakai/sahayak/internal/catalog"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available teaching tools",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Builtin()
		if packPath != "" {
			pack, err := catalog.LoadPack(packPath)
			if err != nil {
				fmt.Printf("Failed to load template pack: %v\n", err)
				os.Exit(1)
			}
			cat = cat.WithPack(pack)
		}

		for _, t := range cat.All() {
			fmt.Printf("%3d  %-28s %s\n", t.ID, t.Title, capabilities(t))
			fmt.Printf("     %s\n", t.Description)
		}
	},
}

func capabilities(t catalog.Template) string {
	var caps []string
	if t.RequestsImage {
		caps = append(caps, "image")
	}
	if t.RequestsVideo {
		caps = append(caps, "video")
	}
	if t.AcceptsImageInput {
		caps = append(caps, "image-input")
	}
	if t.AcceptsAudioInput {
		caps = append(caps, "audio-input")
	}
	if t.RequestsLanguageSelector {
		caps = append(caps, "language")
	}
	if t.SupportsSpeechPlayback {
		caps = append(caps, "speech")
	}
	if len(caps) == 0 {
		return ""
	}
	return "[" + strings.Join(caps, ",") + "]"
}

func init() {
	RootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().StringVar(&packPath, "pack", "", "Path to a YAML template pack merged over the builtin catalog")
}
