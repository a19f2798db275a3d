// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestMissingId Id = iota + 1
	FileUnreadableId
	MalformedRenameLineId
	StoreIoErrorId
	PermissionDeniedId
	RenameTargetMissingId
	RenameConflictId
	RenameIoErrorId
	ConfigLoadFailedId
	ExportFailedId
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages about this issue
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue as terminal markdown. stylePath is a glamour
// standard style name ("dark", "light", "notty", ...), a style file path,
// or AutoStyle.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

func renderMarkdown(in, stylePath string) (string, error) {
	if stylePath == "" || stylePath == AutoStyle {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			return "", err
		}
		return r.Render(in)
	}
	return glamour.Render(in, stylePath)
}

var (
	render = renderMarkdown

	manifestMissingIssue = &Issue{
		id: ManifestMissingId,
		mdMsg: `
# Manifest file not found!

vocab needs two manifest files before it can build the store.

## Expected files (in the manifest directory, default ` + "`config/`" + `):
- **folders.on**: folder names separated by whitespace
- **types.on**: type names separated by whitespace
- **rename.on**: optional rename script

## Things you can try:
- Create the manifest with starter content:
~~~
$ vocab init --manifest
~~~

- Or point vocab at another manifest directory:
~~~cue
manifest: {
  dir: "path/to/manifest"
}
~~~`,
	}

	fileUnreadableIssue = &Issue{
		id: FileUnreadableId,
		mdMsg: `
# File could not be read!

A manifest or data file exists but vocab could not read it as text.

## Common causes:
- The file is not valid UTF-8
- The path is a directory
- Missing read permission

## Things you can try:
- Check the file encoding (vocab expects UTF-8)
- Check the permissions of the file and its directory`,
	}

	malformedRenameLineIssue = &Issue{
		id: MalformedRenameLineId,
		mdMsg: `
# Malformed rename script!

Every line after the leading comment block of **rename.on** must be a rename
instruction. No rename was applied.

## Valid script:
~~~
// comments are kept after the renames run
// and must come before any instruction
from: old_type to: new_type
from:verb to:action
~~~

## Things you can try:
- Fix or remove the reported line
- Move comments to the top of the file
- Skip bad lines and keep them in the script:
~~~cue
rename: {
  lenient: true
}
~~~`,
	}

	storeIoErrorIssue = &Issue{
		id: StoreIoErrorId,
		mdMsg: `
# Could not build the store!

vocab failed to create a folder or data file.

## Common causes:
- A regular file sits where a folder should be
- The disk is full or read-only

## Things you can try:
- Remove or rename the conflicting file
- Preview the layout without touching the store:
~~~
$ vocab --verbose words
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to write to the store.

## Things you can try:
- Check file/directory permissions of the store directory
- Run vocab from a directory you own
- Point the store somewhere else:
~~~cue
store: {
  name: "path/to/store"
}
~~~`,
	}

	renameTargetMissingIssue = &Issue{
		id: RenameTargetMissingId,
		mdMsg: `
# Rename source not found!

A rename instruction names a type whose data file does not exist in some
folder. The batch was aborted and every file was left as it was.

## Things you can try:
- Check the instruction for typos
- Add the type to **types.on** so its files get created
- Preview the planned moves:
~~~
$ vocab rename --dry-run
~~~`,
	}

	renameConflictIssue = &Issue{
		id: RenameConflictId,
		mdMsg: `
# Rename destination already exists!

A rename would replace a data file that the overwrite policy protects. The
batch was aborted and every file was left as it was.

## Overwrite policies:
- **never**: any existing destination is a conflict
- **empty** (default): only empty destinations may be replaced
- **always**: destinations are replaced

## Things you can try:
- Merge or delete the destination file by hand
- Change the policy:
~~~cue
rename: {
  overwrite: "always"
}
~~~`,
	}

	renameIoErrorIssue = &Issue{
		id: RenameIoErrorId,
		mdMsg: `
# Rename failed!

A file system operation failed while applying renames. vocab tried to move
every renamed file back.

## Things you can try:
- Run with verbose mode to see whether the rollback completed:
~~~
$ vocab --verbose rename
~~~

- If it did not, restore the listed files by hand before running again`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the vocab configuration file.

## Configuration file locations (first match wins):
- The path given with ` + "`--config`" + `
- Linux: ~/.config/vocab/config.cue
- macOS: ~/Library/Application Support/vocab/config.cue
- Windows: %APPDATA%\vocab\config.cue
- ./vocab.cue

## Things you can try:
- Create a default configuration:
~~~
$ vocab config init
~~~

- Check VOCAB_* environment variables and the .env file

## Example configuration:
~~~cue
store: {
  name:      "vocabulary"
  extension: "on"
}

rename: {
  overwrite: "empty"
}
~~~`,
	}

	exportFailedIssue = &Issue{
		id: ExportFailedId,
		mdMsg: `
# Export failed!

vocab could not write the SQLite snapshot. The previous snapshot content, if
any, was kept.

## Things you can try:
- Check that the directory of the database file exists and is writable
- Make sure no other program holds a write lock on the database`,
	}

	issues = map[Id]*Issue{
		manifestMissingIssue.Id():     manifestMissingIssue,
		fileUnreadableIssue.Id():      fileUnreadableIssue,
		malformedRenameLineIssue.Id(): malformedRenameLineIssue,
		storeIoErrorIssue.Id():        storeIoErrorIssue,
		permissionDeniedIssue.Id():    permissionDeniedIssue,
		renameTargetMissingIssue.Id(): renameTargetMissingIssue,
		renameConflictIssue.Id():      renameConflictIssue,
		renameIoErrorIssue.Id():       renameIoErrorIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		exportFailedIssue.Id():        exportFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
