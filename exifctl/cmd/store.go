package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/garyhouston/exifdir/store"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	putCmd = &cobra.Command{
		Use:   "put",
		Short: "Read the Exif directory of a file and store it",
		Long:  ``,
		Run:   putExif,
	}

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Print a stored Exif directory",
		Long:  ``,
		Run:   getExif,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored Exif directory",
		Long:  ``,
		Run:   deleteExif,
	}
)

func init() {
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(deleteCmd)
	putCmd.Flags().StringVarP(&inFile, "input", "i", "", "the JPEG or TIFF file to read")
	putCmd.Flags().StringVarP(&key, "key", "k", "", "the key to store under; default the base name of the input file")
	getCmd.Flags().StringVarP(&key, "key", "k", "", "the key of the directory")
	getCmd.Flags().BoolVarP(&asMap, "map", "m", false, "print field names and values instead of the persisted form")
	getCmd.Flags().BoolVarP(&indent, "indent", "", false, "indent the JSON output")
	deleteCmd.Flags().StringVarP(&key, "key", "k", "", "the key of the directory")
}

// Build the store configuration from the config file.
func storeConfig() store.Config {
	var endpoints []string
	for _, url := range strings.Split(viper.GetString("s3.url"), ",") {
		if url = strings.TrimSpace(url); url != "" {
			endpoints = append(endpoints, url)
		}
	}
	return store.Config{
		Backend:    viper.GetString("store.backend"),
		BadgerPath: viper.GetString("store.badger.path"),
		TTL:        viper.GetDuration("store.ttl"),
		S3: store.S3Config{
			Endpoints:       endpoints,
			Region:          viper.GetString("s3.region"),
			Bucket:          viper.GetString("s3.bucket"),
			Prefix:          viper.GetString("s3.prefix"),
			AccessKeyID:     viper.GetString("credential.access_key_id"),
			SecretAccessKey: viper.GetString("credential.secret_access_key"),
			MaxRetries:      viper.GetInt("transport.retry.number"),
			Timeout:         viper.GetDuration("transport.timeout"),
		},
	}
}

func withTimeout() (context.Context, context.CancelFunc) {
	if timeout := viper.GetDuration("transport.timeout"); timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func putExif(cmd *cobra.Command, args []string) {
	if len(inFile) == 0 {
		gLog.Warning.Printf("%s", missingInputFile)
		return
	}
	if len(key) == 0 {
		key = filepath.Base(inFile)
	}
	dir, err := readFile(inFile)
	if err != nil {
		gLog.Error.Printf("%s: %v", inFile, err)
		return
	}
	s, err := store.Open(storeConfig())
	if err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	defer s.Close()
	ctx, cancel := withTimeout()
	defer cancel()
	start := time.Now()
	if err := s.Put(ctx, key, dir); err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	gLog.Info.Printf("Exif directory of %s is stored under %s in %s", inFile, key, time.Since(start))
}

func getExif(cmd *cobra.Command, args []string) {
	if len(key) == 0 {
		gLog.Warning.Printf("%s", missingKey)
		return
	}
	s, err := store.Open(storeConfig())
	if err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	defer s.Close()
	ctx, cancel := withTimeout()
	defer cancel()
	dir, err := s.Get(ctx, key)
	if err == store.ErrNotFound {
		gLog.Warning.Printf("No Exif directory is stored under %s", key)
		return
	}
	if err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	if err := printJSON(dir); err != nil {
		gLog.Error.Printf("%v", err)
	}
}

func deleteExif(cmd *cobra.Command, args []string) {
	if len(key) == 0 {
		gLog.Warning.Printf("%s", missingKey)
		return
	}
	s, err := store.Open(storeConfig())
	if err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	defer s.Close()
	ctx, cancel := withTimeout()
	defer cancel()
	if err := s.Delete(ctx, key); err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	gLog.Info.Printf("Exif directory %s is removed", key)
}
