// Command cldurl signs and inspects media delivery URLs.
//
// Logging:
//   - A text logger on stderr is built here and passed down
//   - --debug lowers the level to debug
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/cldurl"
	"github.com/pthm/cldurl/lib/analytics"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rootCmd := &cobra.Command{
		Use:          "cldurl",
		Short:        "Build and inspect signed media delivery URLs",
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level.Set(slog.LevelDebug)
		}
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newSignCmd(),
		newDecodeCmd(),
		newURLCmd(logger),
		newVersionCmd(),
	)
	return rootCmd
}

func newSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the analytics token for a product, version and feature set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			product, _ := cmd.Flags().GetString("product")
			sdkVersion, _ := cmd.Flags().GetString("sdk-version")
			techVersion, _ := cmd.Flags().GetString("tech-version")
			features, _ := cmd.Flags().GetStringSlice("feature")

			p, err := analytics.ParseProduct(product)
			if err != nil {
				return err
			}
			sdk, err := analytics.ParseVersion(sdkVersion)
			if err != nil {
				return err
			}
			tech, err := p.TechVersion()
			if err != nil {
				return err
			}
			if techVersion != "" {
				if tech, err = analytics.ParseVersion(techVersion); err != nil {
					return err
				}
			}
			fs, err := analytics.ParseFeatures(features...)
			if err != nil {
				return err
			}

			token, err := analytics.Signature{Product: p, SDKVersion: sdk, TechVersion: tech, Features: fs}.Encode()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("product", "angular", "SDK family")
	cmd.Flags().String("sdk-version", cldurl.Version, "SDK version")
	cmd.Flags().String("tech-version", "", "host framework version (default: product default)")
	cmd.Flags().StringSlice("feature", nil, "active feature, repeatable: responsive, placeholder, lazyload, accessibility")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Print the content of an analytics token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := analytics.Decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "product:      %s\n", sig.Product)
			fmt.Fprintf(out, "sdk version:  %s\n", sig.SDKVersion)
			fmt.Fprintf(out, "tech version: %d.%d\n", sig.TechVersion.Major, sig.TechVersion.Minor)
			fmt.Fprintf(out, "features:     %s\n", sig.Features)
			return nil
		},
	}
}

func newURLCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url <public-id>",
		Short: "Build a delivery URL using CLOUDINARY_* environment configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cldurl.LoadConfig()
			if err != nil {
				return err
			}
			b, err := cldurl.New(cfg, cldurl.WithLogger(logger))
			if err != nil {
				return err
			}

			responsive, _ := cmd.Flags().GetBool("responsive")
			lazy, _ := cmd.Flags().GetBool("lazy")
			accessibility, _ := cmd.Flags().GetString("accessibility")
			placeholder, _ := cmd.Flags().GetString("placeholder")
			transformations, _ := cmd.Flags().GetStringSlice("transformation")

			img := cldurl.Image{
				PublicID:        args[0],
				Transformations: transformations,
				Responsive:      responsive,
				Accessibility:   cldurl.AccessibilityMode(strings.ToLower(accessibility)),
				Placeholder:     cldurl.PlaceholderType(strings.ToLower(placeholder)),
			}
			if lazy {
				img.Loading = cldurl.LoadingLazy
			}

			src, err := b.URL(img)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), src)

			if img.Placeholder != "" {
				ph, err := b.PlaceholderURL(img)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ph)
			}
			return nil
		},
	}
	cmd.Flags().Bool("responsive", false, "mark the image as responsive")
	cmd.Flags().Bool("lazy", false, "mark the image as lazily loaded")
	cmd.Flags().String("accessibility", "", "accessibility mode: darkmode, brightmode, monochrome, colorblind")
	cmd.Flags().String("placeholder", "", "also print a placeholder URL: blur, pixelate, vectorize, predominant-color")
	cmd.Flags().StringSlice("transformation", nil, "raw transformation segment, repeatable")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cldurl version %s\n", cldurl.Version)
		},
	}
}
