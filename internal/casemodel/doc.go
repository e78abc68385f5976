// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package casemodel provides the Go representation of a declarative case
// definition: cases, plan models, stages, tasks, milestones, plan items,
// discretionary items, planning tables, sentries and the extension blocks
// that carry listener declarations.
//
// # Core Concepts
//
//   - Definitions: the root container of one loaded source. It holds one or
//     more Case elements.
//
//   - Element: a single typed model node. Definitions (stage, task, milestone,
//     ...) describe "what" is planned; items (plan item, discretionary item)
//     reference a definition by id and describe "where" it is planned.
//
//   - Control: the required / repetition / manual activation rules attached
//     to an item (item control) or to a definition (default control).
//
//   - ExtensionBlock: vendor specific declarations, most importantly case
//     execution listeners and variable listeners.
//
// The model is produced by a loader (see the hclmodel package) and is
// treated as read-only input by the compiler. The loader is trusted for
// structural validity; the compiler only checks what it needs to build the
// activity tree, such as definition references resolving to an element.
package casemodel
