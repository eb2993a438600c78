// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/internal/library"
	"github.com/inkshim/inkshim/pkg/assets"
)

// newAssetsCommand creates the `inkshim assets` command tree.
func newAssetsCommand(app *App) *cobra.Command {
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Browse the read-only asset tree",
		Long: `Browse the read-only asset tree.

Assets come from the bundled defaults unless assets.dir (--assets-dir) or
assets.package (--package) selects another source. Paths are relative and
use '/' separators; the root is the empty path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	assetsCmd.AddCommand(&cobra.Command{
		Use:   "ls [path]",
		Short: "List the entries of an asset directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, app, func(lib *library.Library) error {
				return listAssets(app, lib, optionalArg(args))
			})
		},
	})

	assetsCmd.AddCommand(&cobra.Command{
		Use:   "stat <path>",
		Short: "Show what is known about an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, app, func(lib *library.Library) error {
				return statAsset(app, lib, args[0])
			})
		},
	})

	var render bool
	catCmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the content of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, app, func(lib *library.Library) error {
				return catAsset(app, lib, args[0], render)
			})
		},
	}
	catCmd.Flags().BoolVar(&render, "render", false, "render Markdown assets for the terminal")
	assetsCmd.AddCommand(catCmd)

	var depth int
	treeCmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the asset tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, app, func(lib *library.Library) error {
				return printTree(app, lib, optionalArg(args), depth)
			})
		},
	}
	treeCmd.Flags().IntVar(&depth, "depth", 0, "maximum depth to descend (0 means unlimited)")
	assetsCmd.AddCommand(treeCmd)

	return assetsCmd
}

// withLibrary opens the facade for the duration of fn.
func withLibrary(cmd *cobra.Command, app *App, fn func(*library.Library) error) error {
	lib, _, err := app.openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := fn(lib); err != nil {
		return app.reportError(err)
	}
	return nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// cleanAssetPath normalizes a user-supplied path to the store form.
func cleanAssetPath(p string) string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "." {
		return ""
	}
	return p
}

// notFound builds the error reported for a path that does not exist.
func notFound(p string) error {
	return issue.NewErrorContext().
		WithOperation("find asset").
		WithResource(displayPath(p)).
		WithSuggestion("Run 'inkshim assets tree' to browse the available assets").
		Wrap(&assets.StreamOpenError{Path: p, Err: fmt.Errorf("no such asset")}).
		BuildError()
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func listAssets(app *App, lib *library.Library, p string) error {
	n := lib.CreateResourceFile(cleanAssetPath(p))
	if !n.IsDirectory() {
		if n.Exists() {
			fmt.Fprintln(app.stdout, n.Path())
			return nil
		}
		return notFound(n.Path())
	}
	for _, child := range n.Children() {
		fmt.Fprintln(app.stdout, entryName(child))
	}
	return nil
}

func entryName(n *assets.Node) string {
	if n.IsDirectory() {
		return dirStyle.Render(n.Name() + "/")
	}
	return n.Name()
}

func statAsset(app *App, lib *library.Library, p string) error {
	n := lib.CreateResourceFile(cleanAssetPath(p))
	if !n.Exists() {
		return notFound(n.Path())
	}

	w := app.stdout
	writeField(w, "path", displayPath(n.Path()))
	writeField(w, "name", n.Name())
	if parent := n.Parent(); parent != nil {
		writeField(w, "parent", displayPath(parent.Path()))
	}
	if n.IsDirectory() {
		writeField(w, "type", "directory")
		writeField(w, "entries", fmt.Sprint(len(n.Children())))
		return nil
	}
	writeField(w, "type", "file")
	writeField(w, "size", fmt.Sprint(n.Size()))
	return nil
}

func catAsset(app *App, lib *library.Library, p string, render bool) error {
	n := lib.CreateResourceFile(cleanAssetPath(p))
	rc, err := n.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if !render || !strings.EqualFold(path.Ext(n.Name()), ".md") {
		_, err = io.Copy(app.stdout, rc)
		return err
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	out, err := glamour.Render(string(data), issueStyle)
	if err != nil {
		return err
	}
	_, err = io.WriteString(app.stdout, out)
	return err
}

func printTree(app *App, lib *library.Library, p string, maxDepth int) error {
	root := lib.CreateResourceFile(cleanAssetPath(p))
	if !root.Exists() {
		return notFound(root.Path())
	}
	lib.Tree().Walk(root, func(n *assets.Node, depth int) bool {
		if depth == 0 {
			fmt.Fprintln(app.stdout, dirStyle.Render(displayPath(n.Path())))
			return true
		}
		fmt.Fprintf(app.stdout, "%s%s\n", strings.Repeat("  ", depth), entryName(n))
		return maxDepth == 0 || depth < maxDepth
	})
	return nil
}
