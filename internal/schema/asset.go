package schema

// AssetInput is the body of update-asset-mapi. Omitted properties keep their
// current values.
func AssetInput() Props {
	return Props{
		"title":        String(),
		"codename":     String(),
		"collection":   Object(Props{"reference": Reference()}, "reference"),
		"folder":       Reference(),
		"descriptions": Array(Object(Props{
			"language":    Reference(),
			"description": String(),
		}, "language", "description")),
		"elements": Array(Object(Props{
			"element": Reference(),
			"value":   Array(Reference()),
		}, "element", "value")).Describe("Asset taxonomy element values"),
	}
}

const assetFolderDef = "asset_folder"

// AssetFolderDefinitions must be attached to any root schema using
// AssetFolderPatchOperations.
func AssetFolderDefinitions() map[string]Schema {
	return map[string]Schema{
		assetFolderDef: Object(Props{
			"name":        String(),
			"codename":    String(),
			"external_id": String(),
			"folders":     Array(Ref(assetFolderDef)),
		}, "name"),
	}
}

// AssetFolderPatchOperations is the operations array of patch-asset-folders-mapi.
func AssetFolderPatchOperations() Schema {
	addInto := Object(Props{
		"op":        Const("addInto"),
		"reference": Reference().Describe("Parent folder reference. Omit to add at root level."),
		"value":     Ref(assetFolderDef),
		"before":    Reference(),
		"after":     Reference(),
	}, "op", "value")
	rename := Object(Props{
		"op":        Const("rename"),
		"reference": Reference(),
		"value":     String(),
	}, "op", "reference", "value")
	remove := Object(Props{
		"op":        Const("remove"),
		"reference": Reference(),
	}, "op", "reference")

	return Array(OneOf(addInto, rename, remove)).MinItems(1).
		Describe("Use addInto to add folders, rename to change folder names, remove to delete folders.")
}
