package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/emojigen"
)

func (a *app) emojisCmd() *cobra.Command {
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "emojis [prompt...]",
		Short: "Print the emoji chosen for a prompt",
		Long:  "Print the emoji chosen for a prompt. The choice among matches is not seeded and may differ between runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := a.composer.Emojis(prompt(args))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sel, " "))
			if copyOut {
				return a.copyText(emojigen.Clipboard(sel))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the emoji to the clipboard")
	return cmd
}

func (a *app) titleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title [prompt...]",
		Short: "Print the card title for a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), emojigen.ComposeTitle(prompt(args)))
			return nil
		},
	}
}

func (a *app) keywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords and their emoji",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, k := range a.composer.Keywords() {
				list, _ := a.composer.Lookup(k)
				fmt.Fprintln(w, keywordStyle.Render(k)+strings.Join(list, " "))
			}
			fmt.Fprintln(w, dimStyle.Render("fallback    ")+strings.Join(a.composer.Fallback(), " "))
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "emojigen v%s (%s %s/%s)\n",
				emojigen.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
