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

	"github.com/notargets/permesh/mesh2D"
	"github.com/notargets/permesh/meshfiles"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [snapshot file]",
	Short: "Print a mesh snapshot's structure and statistics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		msh := mesh2D.NewMesh(nil)
		if err := meshfiles.LoadFile(args[0], msh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		d := msh.Domain()
		fmt.Printf("domain [%g,%g]x[%g,%g], %d sheets\n", d[0], d[2], d[1], d[3], msh.NumSheetsTotal())
		fmt.Printf("%d vertices, %d faces, %d edges\n", msh.NumVerts(), msh.NumFaces(), msh.NumEdges())
		if err := msh.Validate(); err != nil {
			fmt.Printf("mesh is not valid: %s\n", err.Error())
			os.Exit(1)
		}
		if msh.NumFaces() > 0 {
			el := msh.EdgeLengths().Data()
			fmt.Printf("edge length min %8.5f max %8.5f mean %8.5f\n",
				floats.Min(el), floats.Max(el), floats.Sum(el)/float64(len(el)))
			da := msh.DualAreas().Data()
			fmt.Printf("dual area  min %8.5f max %8.5f total %8.5f\n",
				floats.Min(da), floats.Max(da), floats.Sum(da))
			fmt.Printf("max circumradius %8.5f\n", msh.MaxCircumradius())
			fmt.Printf("adjacency: %d nonzeros\n", msh.AdjacencyDOK().NNZ())
		}
		if verbose {
			msh.PrintVertexInfo()
			msh.PrintEdgeInfo()
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
