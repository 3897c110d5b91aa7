package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ai "github.com/bitop-dev/ai-mixedbread"
	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

type embedOptions struct {
	model          string
	prompt         string
	dimensions     int
	normalized     bool
	encodingFormat string
	truncation     string
	maxParallel    int
	asJSON         bool
}

// providerOptions only carries the flags the user set, so the API defaults
// apply to the rest.
func (o *embedOptions) providerOptions(cmd *cobra.Command) map[string]any {
	var eo mixedbread.EmbeddingOptions
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		eo.Prompt = &o.prompt
	}
	if flags.Changed("dimensions") {
		eo.Dimensions = &o.dimensions
	}
	if flags.Changed("normalized") {
		eo.Normalized = &o.normalized
	}
	if o.encodingFormat != "" {
		eo.EncodingFormat = mixedbread.EncodingFormat(o.encodingFormat)
	}
	if o.truncation != "" {
		eo.TruncationStrategy = mixedbread.TruncationStrategy(o.truncation)
	}
	return map[string]any{mixedbread.ProviderName: eo}
}

func newEmbedCmd(root *rootOptions) *cobra.Command {
	opts := &embedOptions{}

	cmd := &cobra.Command{
		Use:   "embed TEXT...",
		Short: "Embed one or more texts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}

			resp, err := ai.EmbedMany(cmd.Context(), ai.EmbedManyRequest{
				Model:            client.Embedding(opts.model),
				Input:            args,
				MaxParallelCalls: opts.maxParallel,
				ProviderOptions:  opts.providerOptions(cmd),
			})
			if err != nil {
				return err
			}

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(embedOutput{Vectors: resp.Vectors, Usage: resp.Usage})
			}

			data := make([][]string, len(args))
			for i, text := range args {
				data[i] = []string{strconv.Itoa(i), strconv.Itoa(len(resp.Vectors[i])), truncate(text, 48)}
			}
			renderTable(cmd, []string{"INDEX", "DIMS", "INPUT"}, data)
			if resp.Usage != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\ntokens: %d\n", resp.Usage.Tokens)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", mixedbread.EmbedLargeV1, "embedding model")
	flags.StringVar(&opts.prompt, "prompt", "", "instruction prepended to every input")
	flags.IntVar(&opts.dimensions, "dimensions", 0, "number of output dimensions")
	flags.BoolVar(&opts.normalized, "normalized", true, "normalize the embeddings")
	flags.StringVar(&opts.encodingFormat, "encoding-format", "", "float, float16, base64, binary, ubinary, int8 or uint8")
	flags.StringVar(&opts.truncation, "truncation", "", "start, end or none")
	flags.IntVar(&opts.maxParallel, "max-parallel", 0, "concurrent requests when the input is split (0 = unbounded)")
	flags.BoolVar(&opts.asJSON, "json", false, "print vectors as JSON")

	return cmd
}

type embedOutput struct {
	Vectors [][]float32        `json:"vectors"`
	Usage   *ai.EmbeddingUsage `json:"usage,omitempty"`
}
