package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mangalorg/luacrypt"
	"github.com/mangalorg/luacrypt/crypt"
	"github.com/mangalorg/luacrypt/vm/lib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "luacrypt",
	Short: "luacrypt runs lua scripts with crypt(3) available",
	Long:  `luacrypt runs lua scripts with crypt(3) available as crypt.crypt(key, salt)`,
	Args:  cobra.NoArgs,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log to stderr")
	rootCmd.PersistentFlags().Bool("pass-through", false, "return failure tokens to scripts instead of raising")
	rootCmd.PersistentFlags().Bool("cache", false, "memoize hashes in memory")
}

func newRuntime(cmd *cobra.Command) *luacrypt.Runtime {
	options := luacrypt.DefaultOptions()
	options.FS = afero.NewOsFs()

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		options.Logger.SetOutput(os.Stderr)
	}

	if cache, _ := cmd.Flags().GetBool("cache"); cache {
		options.Cache = luacrypt.NewCacheStore()
	}

	options.PassThroughFailures, _ = cmd.Flags().GetBool("pass-through")

	return luacrypt.NewRuntime(options)
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <script path>",
	Short: "Run a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := newRuntime(cmd).ScriptFromPath(args[0])
		if err != nil {
			return err
		}

		results, err := script.Run(context.Background())
		if err != nil {
			return err
		}

		for _, result := range results {
			fmt.Println(result)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe <script path>",
	Short: "Probe a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := newRuntime(cmd).ScriptFromPath(args[0])
		if err != nil {
			return err
		}

		fmt.Printf(`Name: %s
Description: %s
Version: %s
`,
			script.Info().Name,
			script.Info().Description,
			script.Info().Version,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

var hashCmd = &cobra.Command{
	Use:   "hash <key> <salt>",
	Short: "Hash a key with the host primitive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newRuntime(cmd).Crypt(args[0], args[1])
		if err != nil {
			var cryptErr *crypt.Error
			if pass, _ := cmd.Flags().GetBool("pass-through"); pass && errors.As(err, &cryptErr) {
				fmt.Println(cryptErr.Result)
			}

			return err
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Generate documentation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(lib.LuaDoc(lib.Options{}))
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
