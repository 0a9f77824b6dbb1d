package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ptyshot/ptyshot/pkg/ptycap"
	"github.com/ptyshot/ptyshot/pkg/ptyshotconfig"
	"github.com/ptyshot/ptyshot/pkg/session"
	"github.com/ptyshot/ptyshot/pkg/statewalk"
)

// walkFile is the on-disk shape of a `ptyshot walk --states` file: a
// named sequence of states, each reached from the previous one by its
// own inputs.
type walkFile struct {
	Size   string          `yaml:"size"`
	States []walkFileState `yaml:"states"`
}

type walkFileState struct {
	Name                string         `yaml:"name"`
	Description         string         `yaml:"description,omitempty"`
	Inputs              []walkFileStep `yaml:"inputs"`
	Capture             bool           `yaml:"capture"`
	ExpectedDescription string         `yaml:"expected_description,omitempty"`
}

type walkFileStep struct {
	Key    string `yaml:"key,omitempty"`
	String string `yaml:"string,omitempty"`
}

func newWalkCommand() *cobra.Command {
	var (
		binary     string
		statesPath string
		outDir     string
		size       string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "walk --binary BINARY --states FILE [-- ARGS...]",
		Short: "Walk a program through a sequence of named states, capturing each one",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if binary == "" {
				return fmt.Errorf("ptyshot: --binary is required")
			}
			if statesPath == "" {
				return fmt.Errorf("ptyshot: --states is required")
			}

			data, err := os.ReadFile(statesPath)
			if err != nil {
				return fmt.Errorf("ptyshot: failed to read states file %q: %w", statesPath, err)
			}
			var wf walkFile
			if err := yaml.Unmarshal(data, &wf); err != nil {
				return fmt.Errorf("ptyshot: failed to parse states file %q: %w", statesPath, err)
			}

			cfg := ptyshotconfig.Load()
			sizeSpec := size
			if sizeSpec == "" {
				sizeSpec = wf.Size
			}
			if sizeSpec == "" {
				sizeSpec = cfg.DefaultSize
			}
			parsedSize, err := ptycap.ParseSize(sizeSpec)
			if err != nil {
				return err
			}

			states := make([]statewalk.State, len(wf.States))
			for i, s := range wf.States {
				states[i] = statewalk.State{
					Name: s.Name, Description: s.Description,
					CaptureSnapshot: s.Capture, ExpectedDescription: s.ExpectedDescription,
					Inputs: convertSteps(s.Inputs),
				}
			}

			results, err := statewalk.Walk(statewalk.Config{
				Binary: binary, Args: args, States: states, Size: parsedSize,
			})
			if err != nil {
				return err
			}

			root := outDir
			if root == "" {
				root = cfg.SessionDir
			}
			mgr := session.NewManager(root)
			run, err := mgr.NewRun()
			if err != nil {
				return err
			}

			type reportEntry struct {
				Name string `json:"name"`
				File string `json:"file,omitempty"`
			}
			var report []reportEntry

			for _, r := range results {
				entry := reportEntry{Name: r.State.Name}
				if r.Capture != nil {
					if err := run.WriteCapture(r.Capture.Step, r.State.Name, r.Capture.PNG, r.Capture.Width, r.Capture.Height); err != nil {
						return err
					}
					entry.File = run.CapturePath(r.Capture.Step)
				}
				report = append(report, entry)
			}
			if err := run.Finish(""); err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Walked %d state(s)\n", len(report))
			for _, e := range report {
				if e.File != "" {
					fmt.Printf("  %s: %s\n", e.Name, e.File)
				} else {
					fmt.Printf("  %s: (not captured)\n", e.Name)
				}
			}
			fmt.Printf("Session: %s\n", run.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&binary, "binary", "b", "", "path to the binary to walk")
	cmd.Flags().StringVar(&statesPath, "states", "", "YAML file describing the named state sequence")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: auto-generated session dir)")
	cmd.Flags().StringVarP(&size, "size", "s", "", "terminal size: compact, standard, large, xl, or WxH")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the walk report as JSON instead of text")

	return cmd
}

func convertSteps(steps []walkFileStep) []statewalk.InputAction {
	out := make([]statewalk.InputAction, len(steps))
	for i, s := range steps {
		if s.Key != "" {
			out[i] = statewalk.InputAction{Kind: statewalk.SendKey, Value: s.Key}
		} else {
			out[i] = statewalk.InputAction{Kind: statewalk.SendString, Value: s.String}
		}
	}
	return out
}
