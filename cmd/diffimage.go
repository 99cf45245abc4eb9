package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/ariamatch"
	"github.com/kitetree/ariascope/internal/ariascore"
	"github.com/kitetree/ariascope/internal/ariatree"
	"github.com/spf13/cobra"
)

var diffImageCmd = &cobra.Command{
	Use:   "diff-image",
	Short: "Draw the best-candidate subtree's bounding boxes onto a PNG",
	Long: `Build the accessibility tree for an HTML fixture, find the
best-scoring candidate subtree for a template (the same one "match" reports
as diffTarget on a miss), and draw its element boxes and ref labels onto a
PNG canvas — a visual aid for a human comparing a failed match against the
template by eye.`,
	RunE: runDiffImage,
}

func init() {
	rootCmd.AddCommand(diffImageCmd)
	addFixtureFlags(diffImageCmd)
	diffImageCmd.Flags().String("template", "", "Path to a YAML template file")
	diffImageCmd.Flags().String("scope-id", "", "Search only within the subtree rooted at the element with this HTML id")
	diffImageCmd.Flags().String("out", "diff.png", "Output PNG path")
	diffImageCmd.Flags().Int("width", 1280, "Canvas width in pixels")
	diffImageCmd.Flags().Int("height", 800, "Canvas height in pixels")
}

func runDiffImage(cmd *cobra.Command, args []string) (err error) {
	defer ariaerr.Recover(&err)

	doc, err := loadFixture(cmd)
	if err != nil {
		return err
	}
	scopeID, _ := cmd.Flags().GetString("scope-id")
	outPath, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	template, err := loadTemplate(cmd)
	if err != nil {
		return err
	}

	root := findElementNode(doc, scopeID)
	if root == nil {
		return fmt.Errorf("scope element %q not found in fixture", scopeID)
	}

	opts := buildOptions(cmd)
	bridge := newBridge(opts)

	snapshot := ariatree.Build(bridge, nil, root, opts)

	var target *ariatree.AriaNode
	if matches := ariamatch.FindMatches(snapshot.Root, template, true); len(matches) > 0 {
		target = matches[0]
	} else if candidate := ariascore.FindBestStructuralMatch(snapshot.Root, template); candidate != nil {
		target = candidate.Node
	} else {
		return fmt.Errorf("no candidate subtree found to diff")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	annotateNode(img, target, color.RGBA{R: 255, A: 200})

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}

// annotateNode recursively draws a box and ref/role label for n and every
// descendant node with a non-empty box, the same rectangle-plus-label
// technique the teacher's screenshot annotator uses for element bounds.
func annotateNode(img *image.RGBA, n *ariatree.AriaNode, boxColor color.Color) {
	if n == nil {
		return
	}
	b := n.Box
	if b.W > 0 && b.H > 0 {
		x1, y1 := int(b.X), int(b.Y)
		x2, y2 := int(b.X+b.W), int(b.Y+b.H)
		drawBox(img, x1, y1, x2, y2, boxColor)
		label := n.Role
		if n.Ref != "" {
			label = fmt.Sprintf("[%s] %s", n.Ref, n.Role)
		}
		drawLabel(img, label, x1+2, y1+2)
	}
	for _, c := range n.Children {
		if child, ok := ariatree.AsNode(c); ok {
			annotateNode(img, child, boxColor)
		}
	}
}

func drawBox(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

func drawLabel(img *image.RGBA, text string, x, y int) {
	point := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6((y + 13) * 64)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
