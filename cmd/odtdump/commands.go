package main

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/tsawler/opendoc"
	"github.com/tsawler/opendoc/config"
	"github.com/tsawler/opendoc/pictures"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type dumper struct {
	out io.Writer
	cfg *config.Config
}

func (d *dumper) loader(c *cli.Context, nargs int) (*opendoc.Loader, error) {
	if c.NArg() != nargs {
		return nil, fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}
	limits, err := d.cfg.ArchiveLimits()
	if err != nil {
		return nil, err
	}
	return opendoc.Open(c.Args().First()).Limits(limits).MaxDepth(d.cfg.MaxDepth), nil
}

func (d *dumper) document(c *cli.Context, nargs int) (*opendoc.Document, error) {
	l, err := d.loader(c, nargs)
	if err != nil {
		return nil, err
	}
	doc, warnings, err := l.Document()
	for _, w := range warnings {
		fmt.Fprintf(c.App.ErrWriter, "warning: %s\n", w)
	}
	return doc, err
}

func (d *dumper) list(c *cli.Context) error {
	l, err := d.loader(c, 1)
	if err != nil {
		return err
	}
	entries, err := l.Entries()
	if err != nil {
		return err
	}

	images := make(map[string]pictures.Info)
	for _, name := range entries.Pictures() {
		if info, err := pictures.Inspect(name, entries[name]); err == nil {
			images[name] = info
		}
	}

	tw := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tSIZE\tIMAGE")
	for _, name := range entries.Names() {
		image := ""
		if info, ok := images[name]; ok {
			image = fmt.Sprintf("%s %dx%d", info.Format, info.Width, info.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, humanize.IBytes(uint64(len(entries[name]))), image)
	}
	fmt.Fprintf(tw, "%d members\t%s\t\n", len(entries), humanize.IBytes(entries.Size()))
	return tw.Flush()
}

func (d *dumper) content(c *cli.Context) error {
	doc, err := d.document(c, 1)
	if doc == nil || doc.Content == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "warning: %v\n", err)
	}
	return d.writeJSON(doc.Content)
}

func (d *dumper) styles(c *cli.Context) error {
	doc, err := d.document(c, 1)
	if doc == nil || doc.Styles == nil {
		if err == nil {
			err = errors.New("package has no styles.xml")
		}
		return err
	}
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "warning: %v\n", err)
	}
	return d.writeJSON(doc.Styles)
}

func (d *dumper) style(c *cli.Context) error {
	doc, err := d.document(c, 2)
	if err != nil {
		return err
	}
	name := c.Args().Get(1)
	if _, ok := doc.Resolver().Style(name); !ok {
		return fmt.Errorf("style %q not defined", name)
	}
	return d.writeJSON(doc.Resolver().Resolve(name))
}

func (d *dumper) info(c *cli.Context) error {
	doc, err := d.document(c, 1)
	if err != nil {
		return err
	}
	stats := doc.Stats()

	tw := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "format:\t%s\n", doc.Format)
	fmt.Fprintf(tw, "members:\t%d (%s)\n", len(doc.Entries), humanize.IBytes(doc.Entries.Size()))
	fmt.Fprintf(tw, "paragraphs:\t%s\n", humanize.Comma(int64(stats.Paragraphs)))
	fmt.Fprintf(tw, "headings:\t%d\n", stats.Headings)
	fmt.Fprintf(tw, "tables:\t%d\n", stats.Tables)
	fmt.Fprintf(tw, "lists:\t%d\n", stats.Lists)
	fmt.Fprintf(tw, "links:\t%d\n", stats.Links)
	fmt.Fprintf(tw, "frames:\t%d\n", stats.Frames)
	fmt.Fprintf(tw, "shapes:\t%d\n", stats.Shapes)
	fmt.Fprintf(tw, "annotations:\t%d\n", stats.Annotations)
	fmt.Fprintf(tw, "characters:\t%s\n", humanize.Comma(int64(stats.Characters)))

	tags := make([]string, 0, len(stats.Unrecognized))
	for tag := range stats.Unrecognized {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(tw, "unrecognized %s:\t%d\n", tag, stats.Unrecognized[tag])
	}
	return tw.Flush()
}

// writeJSON prints v indented. Union slices marshal themselves compactly and
// jsoniter does not re-indent Marshaler output, so indentation is a second pass.
func (d *dumper) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(d.out)
	return err
}
