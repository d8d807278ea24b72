package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	broker "github.com/vanet-dev/trust-node/pkg/services/trust/broker/nats"
)

// Global scope flags.
var (
	cfgFile  string
	endpoint string
	subjects string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trust-cli",
	Short: "Command Line Tool to work with the vehicular trust node",
	Long: `Trust CLI publishes trust requests (vehicle initialization, outcome
reports, recompute triggers) to the node's request stream and inspects
stored trust records.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/trust-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "r", "nats://127.0.0.1:4222", "NATS endpoint of the trust node")
	rootCmd.PersistentFlags().StringVar(&subjects, "subject-prefix", broker.DefaultSubjectPrefix, "subject prefix of the trust request stream")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".config/trust-cli")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// connectWriter establishes a request stream connection for
// publishing commands.
func connectWriter() (*broker.Writer, error) {
	w := broker.NewWriter(
		broker.WithSubjectPrefix(subjects),
		broker.WithConnectionName("trust-cli"),
	)

	if err := w.Connect(context.Background(), endpoint); err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", endpoint, err)
	}

	return w, nil
}
