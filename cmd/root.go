package cmd

import (
	"fmt"
	"os"

	"chyp8/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [command]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	Run:   Root,

	SilenceUsage: true,
}

func Root(cmd *cobra.Command, args []string) {
	fmt.Println("Enter command as `chyp8 start /path/ROM --refresh 60`")
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	config.Flags(rootCmd.PersistentFlags())
	config.SetDefaults(viper.GetViper())

	rootCmd.AddCommand(startCmd, traceCmd, disasmCmd)
}

func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	used, err := config.Init(viper.GetViper(), cfgFile, rootCmd.PersistentFlags())
	cobra.CheckErr(err)

	if used != "" && !viper.GetBool("quiet") {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// settings returns the merged flag, env and file configuration.
func settings() (config.Settings, error) {
	return config.Load(viper.GetViper())
}
