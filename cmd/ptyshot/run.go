package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ptyshot/ptyshot/pkg/previewserver"
	"github.com/ptyshot/ptyshot/pkg/ptycap"
	"github.com/ptyshot/ptyshot/pkg/ptyshotconfig"
	"github.com/ptyshot/ptyshot/pkg/session"
	"github.com/ptyshot/ptyshot/pkg/vlmclient"
)

func newRunCommand() *cobra.Command {
	var (
		binary      string
		scriptPath  string
		outDir      string
		metadata    string
		keep        bool
		size        string
		multiSize   bool
		asJSON      bool
		analyze     bool
		vlmEndpoint string
		vlmModel    string
		prompt      string
		live        bool
		liveAddr    string
	)

	cmd := &cobra.Command{
		Use:   "run --binary BINARY --script FILE [-- ARGS...]",
		Short: "Run a program through a scripted input sequence, capturing each step",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if binary == "" {
				return fmt.Errorf("ptyshot: --binary is required")
			}
			if scriptPath == "" {
				return fmt.Errorf("ptyshot: --script is required")
			}

			cfg := ptyshotconfig.Load()
			opts := runOptions{
				binary: binary, args: args, scriptPath: scriptPath,
				outDir: outDir, metadata: metadata, keep: keep,
				sizeOverride: size, multiSize: multiSize, asJSON: asJSON,
				analyze: analyze, vlmEndpoint: vlmEndpoint, vlmModel: vlmModel, prompt: prompt,
				live: live, liveAddr: liveAddr,
			}

			if !cfg.FSWatchScripts {
				return executeRun(cfg, opts)
			}

			done := make(chan struct{})
			defer close(done)
			onChange := func() {
				if err := executeRun(cfg, opts); err != nil {
					fmt.Fprintf(os.Stderr, "ptyshot: re-run after script change failed: %v\n", err)
				}
			}
			onChange()
			return ptyshotconfig.WatchScript(scriptPath, done, onChange)
		},
	}

	cmd.Flags().StringVarP(&binary, "binary", "b", "", "path to the binary to run")
	cmd.Flags().StringVar(&scriptPath, "script", "", "YAML script describing the input sequence")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: auto-generated session dir)")
	cmd.Flags().StringVar(&metadata, "metadata", "", "free-form text written to the run's description.txt")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "keep the output directory regardless of retention policy")
	cmd.Flags().StringVarP(&size, "size", "s", "", "terminal size override: compact, standard, large, xl, or WxH")
	cmd.Flags().BoolVar(&multiSize, "multi-size", false, "run against every size preset in turn, reporting each result separately (results are not compared)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run result as JSON instead of text")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "describe each capture with the configured vision-language model")
	cmd.Flags().StringVar(&vlmEndpoint, "vlm-endpoint", "", "override PTYSHOT_VLM_ENDPOINT")
	cmd.Flags().StringVar(&vlmModel, "vlm-model", "", "override PTYSHOT_VLM_MODEL")
	cmd.Flags().StringVar(&prompt, "prompt", "", "custom VLM prompt (use {input} and {step} placeholders)")
	cmd.Flags().BoolVar(&live, "live", false, "stream captures to a live-preview WebSocket server as they're produced")
	cmd.Flags().StringVar(&liveAddr, "live-addr", "127.0.0.1:8090", "address for the embedded live-preview server when --live is set")

	return cmd
}

type runOptions struct {
	binary, scriptPath, outDir, metadata        string
	args                                        []string
	keep, multiSize, asJSON, analyze            bool
	sizeOverride, vlmEndpoint, vlmModel, prompt string
	live                                        bool
	liveAddr                                    string
}

type stateResult struct {
	Step        int    `json:"step"`
	Input       string `json:"input,omitempty"`
	File        string `json:"file"`
	Description string `json:"description,omitempty"`
}

type runResult struct {
	Success bool          `json:"success"`
	States  []stateResult `json:"states"`
}

func executeRun(cfg ptyshotconfig.Config, opts runOptions) error {
	script, err := loadScript(opts.scriptPath)
	if err != nil {
		return err
	}

	sizeSpec := opts.sizeOverride
	if sizeSpec == "" {
		sizeSpec = script.Size
	}
	if sizeSpec == "" {
		sizeSpec = cfg.DefaultSize
	}

	sizesToRun, err := resolveSizes(sizeSpec, opts.multiSize)
	if err != nil {
		return err
	}

	delay := time.Duration(script.DelayMs) * time.Millisecond
	if delay == 0 {
		delay = cfg.DefaultDelay
	}

	inputs := make([]string, len(script.Inputs))
	labels := make([]string, len(script.Inputs))
	for i, step := range script.Inputs {
		inputs[i] = step.Input
		labels[i] = step.Label
	}

	root := opts.outDir
	if root == "" {
		root = cfg.SessionDir
	}
	mgr := session.NewManager(root)

	var client *vlmclient.Client
	if opts.analyze {
		endpoint := cfg.VLMEndpoint
		if opts.vlmEndpoint != "" {
			endpoint = opts.vlmEndpoint
		}
		model := cfg.VLMModel
		if opts.vlmModel != "" {
			model = opts.vlmModel
		}
		client = vlmclient.New(vlmclient.Config{
			Endpoint:       endpoint,
			Model:          model,
			MaxTokens:      cfg.VLMMaxTokens,
			ConnectTimeout: cfg.VLMConnectTimeout,
			RequestTimeout: cfg.VLMTimeout,
		})
	}

	var hub *previewserver.Hub
	if opts.live {
		hub = previewserver.NewHub()
		server := previewserver.NewServer(hub)
		go func() {
			if err := http.ListenAndServe(opts.liveAddr, server); err != nil {
				fmt.Fprintf(os.Stderr, "ptyshot: live-preview server stopped: %v\n", err)
			}
		}()
	}

	for _, size := range sizesToRun {
		run, err := mgr.NewRun()
		if err != nil {
			return err
		}
		if hub != nil {
			fmt.Printf("Live preview: ws://%s/runs/%s/watch\n", opts.liveAddr, run.ID)
		}

		captures, runErr := ptycap.Run(ptycap.Options{
			Binary: opts.binary,
			Args:   opts.args,
			Inputs: inputs,
			Size:   size,
			Delay:  delay,
		})
		if runErr != nil && len(captures) == 0 {
			return runErr
		}

		result := runResult{Success: runErr == nil}
		for i, cap := range captures {
			label := cap.Input
			if i > 0 && labels[i-1] != "" {
				label = labels[i-1]
			}
			if err := run.WriteCapture(cap.Step, label, cap.PNG, cap.Width, cap.Height); err != nil {
				return err
			}
			if hub != nil {
				hub.Publish(previewserver.Update{
					RunID: run.ID, Step: cap.Step, Label: label,
					PNG: cap.PNG, Width: cap.Width, Height: cap.Height,
				})
			}

			description := ""
			if client != nil {
				description = describeCapture(client, cap, label, opts.prompt, cfg.VLMTimeout)
			}
			result.States = append(result.States, stateResult{
				Step: cap.Step, Input: label,
				File:        run.CapturePath(cap.Step),
				Description: description,
			})
		}

		if err := run.Finish(opts.metadata); err != nil {
			return err
		}

		if err := printRunResult(result, run.Path(), size, opts); err != nil {
			return err
		}
		if !opts.keep && opts.outDir == "" {
			if err := os.RemoveAll(run.Path()); err != nil {
				fmt.Fprintf(os.Stderr, "ptyshot: failed to clean up run directory %s: %v\n", run.Path(), err)
			}
		}
		if runErr != nil {
			return runErr
		}
	}
	return nil
}

func resolveSizes(spec string, multiSize bool) ([]ptycap.Size, error) {
	if multiSize {
		return ptycap.AllPresets(), nil
	}
	s, err := ptycap.ParseSize(spec)
	if err != nil {
		return nil, err
	}
	return []ptycap.Size{s}, nil
}

func describeCapture(client *vlmclient.Client, cap ptycap.Capture, label, customPrompt string, timeout time.Duration) string {
	prompt := customPrompt
	if prompt == "" {
		prompt = fmt.Sprintf("Describe the terminal UI state after step %d (input: %s).", cap.Step, label)
	} else {
		prompt = strings.NewReplacer("{input}", label, "{step}", fmt.Sprintf("%d", cap.Step)).Replace(prompt)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	desc, err := client.Describe(ctx, cap.PNG, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ptyshot: VLM analysis failed for step %d: %v\n", cap.Step, err)
		return ""
	}
	return desc
}

func printRunResult(result runResult, runPath string, size ptycap.Size, opts runOptions) error {
	if opts.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s\n", styleSuccess(fmt.Sprintf("Run completed at %dx%d: %d states captured", size.Cols, size.Rows, len(result.States))))
	for _, state := range result.States {
		inputStr := ""
		if state.Input != "" {
			inputStr = fmt.Sprintf(" (input: %s)", state.Input)
		}
		fmt.Printf("  Step %d%s: %s\n", state.Step, inputStr, state.File)
		if state.Description != "" {
			fmt.Printf("    Description: %s\n", state.Description)
		}
	}
	fmt.Printf("Session: %s\n", runPath)
	return nil
}
