package attrs

//kinderror:generate source = "error", foo = "bar" // want `unknown attribute key: foo$`
type AKind int

const A AKind = 0

//kinderror:generate sorce = "error" // want `unknown attribute key: sorce; did you mean source\?`
type BKind int

const B BKind = 0

//kinderror:generate source "error" // want `expected "=" after source, found "error"`
type CKind int

const C CKind = 0

//kinderror:generate source = "error", source_fn = "yes" // want `source_fn must be true or false; found "yes"`
type DKind int

const D DKind = 0

//kinderror:generate source = "error", new_vis = "public" // want `new_vis: "public" is not a visibility`
type EKind int

const E EKind = 0

//kinderror:generate source = "error" name = "X" // want `expected "," or end of directive, found name`
type FKind int

const F FKind = 0

//kinderror:generate source = "error", name = "my-error" // want `name: "my-error" is not an identifier`
type GKind int

const G GKind = 0

//kinderror:generate source = "error", type_vis = exported // want `type_vis must be a string literal; found exported`
type HKind int

const H HKind = 0

//kinderror:generate foo = 1, bar = 2 // want `unknown attribute key: foo` `unknown attribute key: bar`
type IKind int

const I IKind = 0

// Attributes may continue on the next directive line. The last value of a
// repeated key wins.
//
//kinderror:generate source = "error", name = "Ignored",
//kinderror:generate name = "JError", display = `{kind}: {source}`
type JKind int // ok

const J JKind = 0
