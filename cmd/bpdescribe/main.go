// Copyright (C) 2024 Bitflux, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command bpdescribe inspects the compiled-in Drone message: by
// default it prints the message's schema.Describe document as YAML;
// with -json it instead encodes and decodes a sample value and prints
// the resulting JSON.
// It is a descriptor inspector, not a schema compiler — bpcore has no
// runtime schema loading.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/bitfluxio/bpcore"
	"github.com/bitfluxio/bpcore/examples/drone"
	"github.com/bitfluxio/bpcore/schema"
)

var dashjson bool

func init() {
	flag.BoolVar(&dashjson, "json", false, "print the decoded sample value as JSON instead of the YAML schema")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	runID := uuid.New().String()
	logger := log.New(os.Stderr, fmt.Sprintf("bpdescribe[%s] ", runID), log.LstdFlags)

	droneMsg := drone.DescriptorForSchema()

	if dashjson {
		sample := drone.Sample()
		buf := make([]byte, drone.BytesLengthDrone)
		drone.EncodeDrone(&sample, buf)
		logger.Printf("encoded %d bytes", len(buf))

		var decoded drone.Drone
		drone.DecodeDrone(&decoded, buf)
		if err := drone.JsonDrone(&decoded, os.Stdout); err != nil {
			exitf("json: %s\n", err)
		}
		fmt.Println()
		return
	}

	out, err := schema.YAML(droneMsg)
	if err != nil {
		exitf("describing schema: %s\n", err)
	}
	logger.Printf("fingerprint %016x", bpcore.Fingerprint(droneMsg))
	os.Stdout.Write(out)
}
