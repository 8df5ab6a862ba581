package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell.

Bash:
  $ source <(cdegraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cdegraph completion bash > /etc/bash_completion.d/cdegraph
  # macOS:
  $ cdegraph completion bash > $(brew --prefix)/etc/bash_completion.d/cdegraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cdegraph completion zsh > "${fpath[1]}/_cdegraph"

  # You may need to start a new shell for this setup to take effect.

Fish:
  $ cdegraph completion fish | source

  # To load completions for each session, execute once:
  $ cdegraph completion fish > ~/.config/fish/completions/cdegraph.fish

PowerShell:
  PS> cdegraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cdegraph completion powershell > cdegraph.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}
