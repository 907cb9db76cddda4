package mcpserver

// RoutingContract describes how raido computes pane routing decisions.
// LLM consumers should read it before calling route_link so they supply
// a meaningful pane snapshot.
const RoutingContract = `# Raido Routing Contract

Raido decides, per interaction, whether a link or click should reuse an
existing pane or open a new one. It keeps no pane state of its own: every
decision is computed over the pane snapshot supplied with the request.

## Pane snapshot

` + "```" + `json
[
  {"id": "p1", "view_type": "markdown", "file_path": "folder/note.md"},
  {"id": "p2", "view_type": "empty"}
]
` + "```" + `

- ` + "`" + `id` + "`" + ` is the host's identifier for the pane; activation directives refer to it.
- ` + "`" + `view_type` + "`" + ` is ` + "`" + `markdown` + "`" + ` for note panes and ` + "`" + `empty` + "`" + ` for blank slots.
  Other view types are allowed and matched against the raw link component.
- ` + "`" + `file_path` + "`" + ` is the vault path shown in the pane (omit for empty panes).

## Link decisions (route_link)

For a link click the decision table is, in order:

1. **Same file.** The link's file component is empty (fragment-only link)
   or names the note it was clicked in. No pane change; the caller's own
   new-pane flag passes through (defaults to false when absent).
2. **Already open.** Some pane shows the link target. That pane is
   activated and the new-pane flag is forced to false.
3. **Not open.** The new-pane flag is forced to true so the target opens
   without evicting the current note.

Markdown panes match when their file path ends with the link component
plus ` + "`" + `.md` + "`" + `; non-Markdown panes match the raw component. When several
panes show the target, which one wins is configurable (last match by
default).

## File component

Everything before the first ` + "`" + `#` + "`" + ` in the link text. ` + "`" + `note#heading` + "`" + ` routes
to ` + "`" + `note` + "`" + `; ` + "`" + `#heading` + "`" + ` alone is a same-file jump.

## Click directives (route_click)

Clicks are classified as nav_file, daily_ribbon, unique_ribbon,
search_result, or unhandled. Modifier-held clicks (shift, ctrl, meta,
alt) are never touched. Ribbon and search clicks are suppressed and
replayed with the meta modifier forced on, so the host's own handler
opens a new pane. Nav-file clicks activate a matching pane, or reuse the
first empty pane, or open the file into a new pane directly.
`
