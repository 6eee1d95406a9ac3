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
	"io/ioutil"
	"os"

	"github.com/notargets/permesh/InputParameters"
	"github.com/notargets/permesh/geometry2D"
	"github.com/notargets/permesh/mesh2D"
	"github.com/notargets/permesh/meshfiles"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type TriModel struct {
	PointsFile string
	ParamsFile string
	OutFile    string
	Profile    bool
	Verbose    bool
}

// triangulateCmd represents the triangulate command
var triangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "Triangulate a periodic point set and save the mesh snapshot",
	Long: `Reads a plain-text point file, builds the periodic Delaunay
triangulation over the domain given in the YAML parameters file, and
writes the flat-array snapshot.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			tm  = &TriModel{}
		)
		if tm.PointsFile, err = cmd.Flags().GetString("pointsFile"); err != nil {
			panic(err)
		}
		if tm.ParamsFile, err = cmd.Flags().GetString("parametersFile"); err != nil {
			panic(err)
		}
		tm.OutFile, _ = cmd.Flags().GetString("output")
		tm.Profile, _ = cmd.Flags().GetBool("profile")
		tm.Verbose, _ = cmd.Flags().GetBool("verbose")
		mp := processMeshInput(tm)
		RunTriangulate(tm, mp)
	},
}

func processMeshInput(tm *TriModel) (mp *InputParameters.MeshParameters) {
	var (
		err      error
		willExit bool
	)
	if len(tm.PointsFile) == 0 {
		err = fmt.Errorf("must supply a points file (-F, --pointsFile)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	mp = &InputParameters.MeshParameters{}
	if len(tm.ParamsFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(tm.ParamsFile); err != nil {
			panic(err)
		}
		if err = mp.Parse(data); err != nil {
			panic(err)
		}
	} else {
		mp.Domain = [4]float64{0, 0, 1, 1}
	}
	if tm.Verbose {
		mp.Print()
	}
	return
}

func RunTriangulate(tm *TriModel, mp *InputParameters.MeshParameters) {
	if tm.Profile {
		defer profile.Start().Stop()
	}
	pts, infos, err := meshfiles.ReadPoints(tm.PointsFile, tm.Verbose || mp.Verbose)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	msh := mesh2D.NewMesh(geometry2D.NewTriangulator(mp.Kernel))
	msh.Verbose = tm.Verbose || mp.Verbose
	msh.SetDomain(mp.Domain[0], mp.Domain[1], mp.Domain[2], mp.Domain[3])
	msh.Insert(pts, infos)
	fmt.Printf("%d vertices, %d faces, %d sheets\n",
		msh.NumVerts(), msh.NumFaces(), msh.NumSheetsTotal())
	if len(tm.OutFile) != 0 {
		if err = meshfiles.SaveFile(tm.OutFile, msh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", tm.OutFile)
	}
}

func init() {
	rootCmd.AddCommand(triangulateCmd)
	triangulateCmd.Flags().StringP("pointsFile", "F", "", "Point file: count line, then x y [id] per line")
	triangulateCmd.Flags().StringP("parametersFile", "I", "", "YAML file for mesh parameters like:\n\t- Domain\n\t- Kernel")
	triangulateCmd.Flags().StringP("output", "o", "", "snapshot file to write")
	triangulateCmd.Flags().Bool("profile", false, "write a CPU profile of the triangulation")
}
