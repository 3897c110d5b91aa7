package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mxbai",
		Short:         "Embed and rerank text with Mixedbread models",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (api_key, base_url, headers, max_embeddings_per_call)")
	flags.StringVar(&opts.apiKey, "api-key", "", "API key (default $"+mixedbread.APIKeyEnv+")")
	flags.StringVar(&opts.baseURL, "base-url", "", "API base URL (default "+mixedbread.DefaultBaseURL+")")

	rootCmd.AddCommand(
		newEmbedCmd(opts),
		newRerankCmd(opts),
		newSimilarityCmd(opts),
	)

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + fmt.Sprintf(`
Environment Variables:
      %-24s   %s
`, mixedbread.APIKeyEnv, "API key used when --api-key and the config file set none"))

	return rootCmd
}
