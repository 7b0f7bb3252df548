package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"fanc/internal/buildpipeline"
	"fanc/internal/diagfmt"
	"fanc/internal/driver"
	"fanc/internal/project"
)

const noSourcesMessage = `no source files given and no fanc.toml found

Pass files explicitly:
  fanc build main.fanc
or create a fanc.toml:
  [package]
  name = "demo"`

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [file.fanc...]",
		Short: "Compile FanC files to LLVM IR",
		Long: `Build compiles each file to <name>.ll. Without arguments the sources
listed in the nearest fanc.toml are built.`,
		RunE: runBuild,
	}
	cmd.Flags().StringP("out", "o", "", "output directory, or - to print the IR to stdout")
	cmd.Flags().Bool("verify", false, "parse the generated IR with the LLVM assembly parser")
	cmd.Flags().Int("jobs", 0, "parallel compilations (0 = GOMAXPROCS)")
	cmd.Flags().Bool("cache", false, "reuse IR from the on-disk cache")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	return cmd
}

type buildFlags struct {
	out    string
	verify bool
	jobs   int
	cache  bool
	ui     uiMode
}

func readBuildFlags(cmd *cobra.Command) (buildFlags, error) {
	var bf buildFlags
	var err error
	if bf.out, err = cmd.Flags().GetString("out"); err != nil {
		return bf, err
	}
	if bf.verify, err = cmd.Flags().GetBool("verify"); err != nil {
		return bf, err
	}
	if bf.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return bf, err
	}
	if bf.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return bf, err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return bf, err
	}
	bf.ui, err = readUIMode(uiValue)
	return bf, err
}

func runBuild(cmd *cobra.Command, args []string) error {
	bf, err := readBuildFlags(cmd)
	if err != nil {
		return err
	}
	if bf.jobs < 0 {
		return fmt.Errorf("--jobs must not be negative")
	}

	files := args
	title := "fanc build"
	if len(files) == 0 {
		manifest, ok, err := project.Discover(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noSourcesMessage)
		}
		if files, err = manifest.Sources(); err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("%s: no files match [build].sources", manifest.Path)
		}
		title = "fanc build " + manifest.Config.Package.Name
		applyManifest(cmd, &bf, manifest)
	}

	req := &buildpipeline.Request{
		Files:   files,
		OutDir:  bf.out,
		NoWrite: bf.out == "-",
		Jobs:    bf.jobs,
		Options: driver.Options{Verify: bf.verify},
	}
	if req.NoWrite {
		req.OutDir = ""
	}
	if bf.cache {
		cache, err := driver.OpenDiskCache("fanc")
		if err != nil {
			return err
		}
		req.Options.Cache = cache
	}

	var res *buildpipeline.Result
	if !req.NoWrite && !quietFlag(cmd) && shouldUseTUI(bf.ui) {
		res, err = runBuildWithUI(cmd.Context(), title, req, cmd.ErrOrStderr())
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}
	if err != nil {
		return err
	}
	if err := reportBuild(cmd, res, req.NoWrite); err != nil {
		return err
	}
	if timingsFlag(cmd) {
		printStageTimings(cmd.ErrOrStderr(), res.Timings)
		printPhaseTimings(cmd.ErrOrStderr(), res.Timer)
	}
	return nil
}

// applyManifest fills flags the user did not set from [build].
func applyManifest(cmd *cobra.Command, bf *buildFlags, m *project.Manifest) {
	flags := cmd.Flags()
	if !flags.Changed("out") {
		bf.out = m.OutDir()
	}
	if !flags.Changed("verify") {
		bf.verify = m.Config.Build.Verify
	}
	if !flags.Changed("jobs") {
		bf.jobs = m.Config.Build.Jobs
	}
	if !flags.Changed("cache") {
		bf.cache = m.Config.Build.Cache
	}
}

// reportBuild prints one diagnostic line per failed file. With several
// files each line is prefixed by the file name.
func reportBuild(cmd *cobra.Command, res *buildpipeline.Result, toStdout bool) error {
	out := cmd.OutOrStdout()
	multi := len(res.Files) > 1
	for _, fr := range res.Files {
		if fr.Err != nil {
			if multi {
				fmt.Fprintf(out, "%s: ", fr.Path)
			}
			if _, err := diagfmt.Short(out, fr.Err); err != nil {
				return err
			}
			continue
		}
		if toStdout {
			if multi {
				fmt.Fprintf(out, "; %s\n", fr.Path)
			}
			if _, err := io.WriteString(out, fr.Compile.IR); err != nil {
				return err
			}
			continue
		}
		note := ""
		if fr.Compile.Cached {
			note = " (cached)"
		}
		infof(cmd, "wrote %s%s\n", displayPath(fr.Output), note)
	}
	if failed := res.Failed(); failed > 0 {
		infof(cmd, "%d of %d files failed\n", failed, len(res.Files))
	}
	return nil
}

func displayPath(path string) string {
	if rel, err := filepath.Rel(".", path); err == nil {
		return rel
	}
	return path
}
