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
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [snapshot file]",
	Short: "Switch a mesh snapshot between 1-sheeted and 9-sheeted covering",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sheets, _ := cmd.Flags().GetInt("sheets")
		out, _ := cmd.Flags().GetString("output")
		if sheets != 1 && sheets != 9 {
			fmt.Printf("error: sheets must be 1 or 9, not %d\n", sheets)
			os.Exit(1)
		}
		if len(out) == 0 {
			out = args[0]
		}
		msh := mesh2D.NewMesh(nil)
		if err := meshfiles.LoadFile(args[0], msh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if sheets == 9 {
			msh.ToNineSheeted()
		} else {
			msh.ToOneSheeted()
		}
		if err := meshfiles.SaveFile(out, msh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s with %d sheets\n", out, msh.NumSheetsTotal())
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().IntP("sheets", "s", 1, "target covering, 1 or 9")
	convertCmd.Flags().StringP("output", "o", "", "snapshot file to write, defaults to input")
}
