package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"safelink/backend/internal/glossary"
)

// newStandardizeCmd runs the offline pipeline against the built-in glossary
// only. Handy for checking a phrase without a database.
func newStandardizeCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "standardize <text>",
		Short: "Print the standardized text, detected terms and fallback translation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			snap := glossary.BuiltinSnapshot()
			res := glossary.Standardize(text, snap)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "standard: %s\n", res.StandardText)
			fmt.Fprintf(out, "detected: %s\n", strings.Join(res.DetectedTerms, ", "))
			if lang != "" {
				if _, ok := glossary.LookupLanguage(lang); !ok {
					return fmt.Errorf("unknown language %q", lang)
				}
				fmt.Fprintf(out, "%s: %s\n", glossary.LanguageKey(lang), glossary.TranslateFallback(res.StandardText, lang, snap))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "target language key or code, e.g. vi or vi-VN")
	return cmd
}
