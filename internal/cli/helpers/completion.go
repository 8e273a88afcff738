package helpers

import (
	"strings"

	"github.com/spf13/cobra"

	"calcit.dev/calcit/internal/actions"
	"calcit.dev/calcit/internal/config"
)

// CompleteConfigKeys is a helper for cobra.ValidArgsFunction that completes
// the first argument with a configuration key.
func CompleteConfigKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var keys []string
	for _, key := range config.Keys {
		if strings.HasPrefix(key, toComplete) {
			keys = append(keys, key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// CompleteButtons completes press arguments with action names and button aliases
func CompleteButtons(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, name := range actions.ButtonNames() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
