package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/hullworks/qhull"
)

// Reads whitespace-separated points on stdin, one point per line, computes
// the requested structure and prints a summary plus the result simplices.
// With --png and 2-d input, also renders the result.

var (
	delaunay = kingpin.Flag("delaunay", "Compute the Delaunay triangulation instead of the hull.").Bool()
	voronoi  = kingpin.Flag("voronoi", "Compute the Voronoi diagram instead of the hull.").Bool()
	check    = kingpin.Flag("check", "Run consistency checks after computing.").Bool()
	pngPath  = kingpin.Flag("png", "Render the 2-d result to this file.").String()
	scale    = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("100").Float64()
)

func main() {
	kingpin.Parse()

	points, err := readPoints(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(2)
	}

	var qh *qhull.Qh
	switch {
	case *voronoi:
		qh, err = qhull.NewVoronoi(points)
	case *delaunay:
		qh, err = qhull.NewDelaunay(points)
	default:
		qh, err = qhull.New(points)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	defer qh.Close()

	if *check {
		if err := qh.CheckOutput(); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
	}

	fmt.Printf("%s %d points in %d-d: %s facets, %s vertices\n",
		aurora.Green("ok:"),
		len(points), qh.InputDim(),
		aurora.Bold(qh.NumFaces()), aurora.Bold(qh.NumVertices()))

	for _, face := range qh.Simplices().Collect() {
		ids := face.Vertices().Indices()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		fmt.Printf("  f%-4d %s\n", face.ID(), strings.Join(parts, " "))
	}

	if *voronoi {
		for i, center := range qh.VoronoiVertices() {
			fmt.Printf("  voronoi vertex %d at %v\n", i, center)
		}
	}

	if *pngPath != "" {
		if err := qh.RenderPNG(*pngPath, *scale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
		fmt.Println("rendered to", *pngPath)
	}
}

func readPoints(in *os.File) ([][]float64, error) {
	var points [][]float64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		point := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %q: %v", line, err)
			}
			point[i] = v
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points on stdin")
	}
	return points, nil
}
