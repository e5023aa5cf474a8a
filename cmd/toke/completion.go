package toke

import (
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/toke/pkg/config"
	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/spf13/cobra"
)

func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell)
	}
}

// complete offers target names for the first argument and KEY= prefixes of
// the variables known to the chosen target after it.
func (a *app) complete(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.settings == nil {
		settings, err := config.Load(config.LoadOptions{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		a.settings = settings
	}

	doc, err := a.loadDocument()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	if len(args) == 0 {
		var out []string
		for _, name := range doc.Names() {
			if !strings.HasPrefix(name, toComplete) {
				continue
			}
			if t, _ := doc.Target(name); t.Desc != "" {
				name += "\t" + t.Desc
			}
			out = append(out, name)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}

	keys := make(map[string]bool)
	for k := range doc.Vars {
		keys[k] = true
	}
	if t, ok := doc.Target(args[0]); ok {
		for k := range t.Vars {
			keys[k] = true
		}
	}

	var out []string
	for k := range keys {
		if strings.HasPrefix(k+"=", toComplete) {
			out = append(out, k+"=")
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
