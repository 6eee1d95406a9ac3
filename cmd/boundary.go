/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/notargets/permesh/decomp"
	"github.com/notargets/permesh/mesh2D"
	"github.com/notargets/permesh/meshfiles"
	"github.com/spf13/cobra"
)

// boundaryCmd represents the boundary command
var boundaryCmd = &cobra.Command{
	Use:   "boundary [snapshot file]",
	Short: "List vertices whose faces' circumdisks cross a box boundary",
	Long: `Loads a mesh snapshot and reports, per boundary side, the
external identifiers of vertices belonging to faces whose circumscribing
disk crosses that side of the query box. The box defaults to the domain.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		msh := mesh2D.NewMesh(nil)
		if err := meshfiles.LoadFile(args[0], msh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		d := msh.Domain()
		le := [2]float64{d[0], d[1]}
		re := [2]float64{d[2], d[3]}
		if cmd.Flags().Changed("box") {
			box, _ := cmd.Flags().GetFloat64Slice("box")
			if len(box) != 4 {
				fmt.Printf("error: --box needs xlow,ylow,xhigh,yhigh\n")
				os.Exit(1)
			}
			le = [2]float64{box[0], box[1]}
			re = [2]float64{box[2], box[3]}
		}
		lx, ly, rx, ry, all := decomp.BoundaryPoints(msh, le, re)
		fmt.Printf("left x : %v\n", lx)
		fmt.Printf("left y : %v\n", ly)
		fmt.Printf("right x: %v\n", rx)
		fmt.Printf("right y: %v\n", ry)
		fmt.Printf("all    : %v\n", all)
	},
}

func init() {
	rootCmd.AddCommand(boundaryCmd)
	boundaryCmd.Flags().Float64Slice("box", nil, "query box as xlow,ylow,xhigh,yhigh")
}
