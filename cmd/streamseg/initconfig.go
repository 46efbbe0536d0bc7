package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfgpkg "streamseg/internal/config"
)

func newInitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [dir]",
		Short: "Write a default config.json template into a directory",
		Long: "init-config creates the target directory if needed and writes a\n" +
			"runnable config.json there. It never overwrites an existing file;\n" +
			"dir defaults to the current directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			cfg := cfgpkg.DefaultTemplateConfig()
			b, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "config.json")
			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				if os.IsExist(err) {
					cmd.Println("config.json already exists, skipped:", path)
					return nil
				}
				return err
			}
			defer f.Close()
			if _, err := f.Write(append(b, '\n')); err != nil {
				return err
			}
			cmd.Println("wrote", path)
			return nil
		},
	}
	return cmd
}
