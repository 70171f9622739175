package main

import (
	"context"
	"flag"
	"log"

	"terraform-provider-vestacp/internal/provider"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
)

var (
	// these will be set by the goreleaser configuration
	// to appropriate values for the compiled binary.
	version string = "dev"
)

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to run the provider with support for debuggers like delve")
	flag.Parse()

	opts := providerserver.ServeOpts{
		Address: "registry.terraform.io/vestacp/vestacp",
		Debug:   debug,
	}

	err := providerserver.Serve(context.Background(), provider.New(version), opts)
	telemetry.Get(context.Background()).Flush()

	if err != nil {
		log.Fatal(err.Error())
	}
}
