package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sahayakai/sahayak/internal/image"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/provider"
	"github.com/sahayakai/sahayak/internal/ui"
	"github.com/sahayakai/sahayak/internal/ui/tui"
	"github.com/sahayakai/sahayak/internal/video"
)

var (
	verbose      bool
	providerType string
	modelName    string
	ciMode       bool
	interactive  bool
	speak        bool

	inputText     string
	secondaryText string
	languageName  string
	questionCount int
	imagePath     string
	audioPath     string
	packPath      string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sahayak",
	Short: "AI teaching assistant",
	Long: `Sahayak generates classroom content from a catalog of teaching tools:
stories, worksheets, lesson plans, visual aids and more, with optional
illustrative images and video suggestions.`,
}

var runCmd = &cobra.Command{
	Use:   "run [template-id]",
	Short: "Generate content with a catalog template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid template id %q\n", args[0])
			os.Exit(1)
		}
		runGeneration(id)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	runCmd.Flags().StringVarP(&providerType, "provider", "p", "gemini", "Text provider (gemini, openai, ollama)")
	runCmd.Flags().StringVarP(&modelName, "model", "m", "", "Model name (default depends on provider)")
	runCmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: JSON logs, non-interactive")
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Start interactive TUI")
	runCmd.Flags().BoolVar(&speak, "speak", false, "Read the generated text aloud when the template supports it")

	runCmd.Flags().StringVar(&inputText, "input", "", "Primary input text")
	runCmd.Flags().StringVar(&secondaryText, "secondary", "", "Secondary input text")
	runCmd.Flags().StringVar(&languageName, "language", "", "Output language")
	runCmd.Flags().IntVar(&questionCount, "count", 0, "Number of questions, for templates that ask")
	runCmd.Flags().StringVar(&imagePath, "attach-image", "", "Path to an image attachment")
	runCmd.Flags().StringVar(&audioPath, "attach-audio", "", "Path to an audio attachment")
	runCmd.Flags().StringVar(&packPath, "pack", "", "Path to a YAML template pack merged over the builtin catalog")
}

func runGeneration(templateID int) {
	var obs *observe.Observer
	if ciMode {
		obs = observe.New(os.Stdout, observe.JSON, verbose)
	} else {
		obs = observe.New(os.Stdout, observe.Console, verbose)
	}
	defer obs.Close()

	storeLayer := getStore()
	defer storeLayer.Close()

	ctx := context.Background()

	var streamer provider.Streamer
	var sErr error
	switch providerType {
	case "gemini":
		streamer, sErr = provider.NewGeminiStreamer(ctx, getSecret(storeLayer, "gemini.api_key", "GEMINI_API_KEY"), modelName)
	case "openai":
		baseURL, _ := storeLayer.GetConfig("openai.base_url")
		streamer, sErr = provider.NewOpenAIStreamer(getSecret(storeLayer, "openai.api_key", "OPENAI_API_KEY"), baseURL, modelName)
	case "ollama":
		streamer, sErr = provider.NewOllamaStreamer(modelName)
	default:
		obs.Log().Fatal().Str("provider", providerType).Msg("Unknown provider")
	}
	if sErr != nil {
		obs.Log().Fatal().Err(sErr).Msg("Failed to initialize provider")
	}

	geminiKey := getSecret(storeLayer, "gemini.api_key", "GEMINI_API_KEY")
	images, iErr := image.NewGeminiGenerator(ctx, geminiKey, "", obs)
	if iErr != nil {
		obs.Log().Fatal().Err(iErr).Msg("Failed to initialize image generator")
	}
	videos := video.NewYouTubeSearcher(ctx, getSecret(storeLayer, "youtube.api_key", "YOUTUBE_API_KEY"), obs)

	runner := NewRunner(obs, storeLayer, streamer, images, videos, nil)
	runner.TemplateID = templateID
	runner.PackPath = packPath
	runner.ImagePath = imagePath
	runner.AudioPath = audioPath
	runner.Speak = speak

	if interactive {
		model := tui.NewModel("Sahayak")
		program := tea.NewProgram(model)
		runner.UI = tui.NewTUI(program)

		go func() {
			_ = runner.Run(context.Background())
			program.Quit()
		}()

		if _, err := program.Run(); err != nil {
			fmt.Printf("Alas, there's been an error: %v", err)
			os.Exit(1)
		}
	} else {
		runner.UI = &consoleUI{}
		if err := runner.Run(context.Background()); err != nil {
			os.Exit(1)
		}
		fmt.Println()
	}
}

// consoleUI prints streamed output directly; suited to non-interactive runs.
// SetText receives the full accumulated text, so only the new suffix is
// written.
type consoleUI struct {
	lastLen int
}

func (c *consoleUI) UpdateStatus(status string) {}

func (c *consoleUI) SetText(text string) {
	if len(text) > c.lastLen {
		fmt.Print(text[c.lastLen:])
		c.lastLen = len(text)
	}
}

func (c *consoleUI) SetImage(uri string) {
	fmt.Printf("\n\n[visual aid: %d-byte data URI]\n", len(uri))
}

func (c *consoleUI) SetImageError(reason string) {
	fmt.Printf("\n\n[visual aid unavailable: %s]\n", reason)
}

func (c *consoleUI) SetVideos(suggestions []video.Suggestion) {
	fmt.Println("\n\nRelated videos:")
	for _, s := range suggestions {
		fmt.Printf("  - %s\n    %s\n", s.Title, s.URL)
	}
}

func (c *consoleUI) Log(msg string) {
	fmt.Println(msg)
}

var _ ui.UI = (*consoleUI)(nil)
