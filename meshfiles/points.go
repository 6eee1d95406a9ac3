package meshfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

/*
ReadPoints reads a plain-text point file:

	npts
	x y [info]
	...

The third column is optional; when absent, identifiers are assigned by
line position.
*/
func ReadPoints(path string, verbose bool) (pts [][2]float64, infos []uint64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read file %s: %v", path, err)
	}
	defer file.Close()
	if verbose {
		fmt.Printf("Reading points file named: %s\n", path)
	}
	var (
		scanner = bufio.NewScanner(file)
		n       int
	)
	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("%s: missing point count line", path)
	}
	if n, err = strconv.Atoi(strings.TrimSpace(scanner.Text())); err != nil {
		return nil, nil, fmt.Errorf("%s: bad point count: %v", path, err)
	}
	pts = make([][2]float64, 0, n)
	infos = make([]uint64, 0, n)
	for len(pts) < n && scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%s: point line %d needs x and y", path, len(pts)+1)
		}
		var x, y float64
		if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, nil, fmt.Errorf("%s: bad x coordinate: %v", path, err)
		}
		if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, nil, fmt.Errorf("%s: bad y coordinate: %v", path, err)
		}
		info := uint64(len(pts))
		if len(fields) > 2 {
			if info, err = strconv.ParseUint(fields[2], 10, 64); err != nil {
				return nil, nil, fmt.Errorf("%s: bad identifier: %v", path, err)
			}
		}
		pts = append(pts, [2]float64{x, y})
		infos = append(infos, info)
	}
	if len(pts) != n {
		return nil, nil, fmt.Errorf("%s: expected %d points, found %d", path, n, len(pts))
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", path, err)
	}
	if verbose {
		fmt.Printf("Read %d points\n", len(pts))
	}
	return
}
