package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	config, inFile, key string
	verbose             bool
	loglevel            int

	missingInputFile = "Missing input file - please provide the path of a JPEG or TIFF file"
	missingKey       = "Missing key - please provide the key of the stored directory"

	RootCmd = &cobra.Command{
		Use:              "exifctl",
		Short:            "Read, convert and store Exif metadata",
		Long:             ``,
		TraverseChildren: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().IntVarP(&loglevel, "loglevel", "l", 0, "Output level of logs (1: error, 2: Warning, 3: Info , 4 Trace, 5 Debug)")
	RootCmd.PersistentFlags().StringVarP(&config, "config", "c", "", "Full path of the config file; default $HOME/.exifctl/config.yaml")

	// bind application flags to viper keys for future viper.Get()
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("loglevel", RootCmd.PersistentFlags().Lookup("loglevel"))
	cobra.OnInitialize(initConfig)
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		log.Fatalln(err)
	}
	if config != "" {
		viper.SetConfigFile(config)
	} else {
		viper.AddConfigPath("/etc/exifctl")
		viper.AddConfigPath(filepath.Join(home, ".exifctl"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetDefault("logging.output", "terminal")
	viper.SetDefault("store.backend", "badger")
	viper.SetDefault("store.badger.path", filepath.Join(home, ".exifctl", "db"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	} else if config != "" {
		log.Printf("Error %v reading config file %s", err, viper.ConfigFileUsed())
	}

	logOutput := viper.GetString("logging.output")
	loglevel = setLogLevel(loglevel)
	gLog.InitLog(RootCmd.Name(), loglevel, logOutput)
}

func setLogLevel(loglevel int) int {
	if loglevel == 0 {
		loglevel = viper.GetInt("logging.log_level")
	}
	if viper.GetBool("verbose") {
		loglevel = 4
	}
	return loglevel
}
