// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package casemodel

// FSInfo links an element back to the file it was loaded from.
type FSInfo struct {
	FilePath string
}

func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
