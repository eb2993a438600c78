// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InvalidDeviceOverrideId
	AssetNotFoundId
	AssetIsDirectoryId
	PackageOpenFailedId
	AssetDirNotFoundId
	HostIdentityUnavailableId
)

type (
	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to look up the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // must never be empty
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

const docsBase = "https://github.com/inkshim/inkshim/blob/main/docs/"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be loaded.

## Things you can try:
- Print the file in use:
~~~
$ inkshim config path
~~~

- Compare it with the defaults:
~~~
$ inkshim config dump --format cue
~~~

- Check the values against their ranges:
  - ` + "`battery_level_to_turn_screen_off`" + ` and ` + "`screen_brightness_level`" + ` take 0..100
  - ` + "`eink_update_interval`" + ` takes 0..20
  - ` + "`assets.dir`" + ` and ` + "`assets.package`" + ` cannot both be set`,
		docLinks: []HttpLink{docsBase + "configuration.md"},
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidDeviceOverrideIssue = &Issue{
		id: InvalidDeviceOverrideId,
		mdMsg: `
# Unknown device profile!

The forced device name does not match any known profile.

## Things you can try:
- List the known profiles:
~~~
$ inkshim device list
~~~

- Remove ` + "`host.profile`" + ` from your configuration, or unset ` + "`INKSHIM_HOST_PROFILE`" + `, to let the host be classified.`,
		docLinks: []HttpLink{docsBase + "devices.md"},
	}

	assetNotFoundIssue = &Issue{
		id: AssetNotFoundId,
		mdMsg: `
# Asset not found!

Nothing exists at the requested asset path.

## Things you can try:
- Asset paths are relative and use '/' separators, for example ` + "`data/intro/intro-en.md`" + `
- Browse the available assets:
~~~
$ inkshim assets tree
~~~`,
		docLinks: []HttpLink{docsBase + "assets.md"},
	}

	assetIsDirectoryIssue = &Issue{
		id: AssetIsDirectoryId,
		mdMsg: `
# That asset is a directory!

Directories have no content stream.

## Things you can try:
- List its entries instead:
~~~
$ inkshim assets ls <path>
~~~`,
		docLinks: []HttpLink{docsBase + "assets.md"},
	}

	packageOpenFailedIssue = &Issue{
		id: PackageOpenFailedId,
		mdMsg: `
# Failed to open the application package!

Assets are read from the ` + "`assets/`" + ` folder of a zip-based package.

## Things you can try:
- Check that the file exists and is readable
- Check that it is a valid zip archive:
~~~
$ unzip -l reader.apk | grep assets/
~~~`,
		docLinks: []HttpLink{docsBase + "assets.md"},
		extLinks: []HttpLink{"https://developer.android.com/guide/topics/resources/providing-resources#OriginalFiles"},
	}

	assetDirNotFoundIssue = &Issue{
		id: AssetDirNotFoundId,
		mdMsg: `
# Asset directory not found!

The directory configured in ` + "`assets.dir`" + ` does not exist.

## Things you can try:
- Fix the path in your configuration
- Remove the setting to use the bundled assets`,
		docLinks: []HttpLink{docsBase + "assets.md"},
	}

	hostIdentityUnavailableIssue = &Issue{
		id: HostIdentityUnavailableId,
		mdMsg: `
# Could not read the host identity!

Neither the Android build properties nor the host information could be read,
so the device is treated as ` + "`GENERIC`" + `.

## Things you can try:
- Describe the host in your configuration:
~~~cue
host: {
	brand: "nook"
	model: "NOOK"
	manufacturer: "BarnesAndNoble"
	device: "zoom2"
}
~~~`,
		docLinks: []HttpLink{docsBase + "devices.md"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		invalidDeviceOverrideIssue.Id():   invalidDeviceOverrideIssue,
		assetNotFoundIssue.Id():           assetNotFoundIssue,
		assetIsDirectoryIssue.Id():        assetIsDirectoryIssue,
		packageOpenFailedIssue.Id():       packageOpenFailedIssue,
		assetDirNotFoundIssue.Id():        assetDirNotFoundIssue,
		hostIdentityUnavailableIssue.Id(): hostIdentityUnavailableIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	all := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		all = append(all, i)
	}
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}
