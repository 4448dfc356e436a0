// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

// propID keys the well-known property identifier tables on a record's
// numeric identifier together with its (canonicalized) value type, the
// same two-part key §3's "Property identifier tables" describes: a
// symbolic name like PIDSI_TITLE only means "title" when paired with
// the VT_ tag a well-behaved writer would have used for it. The value
// type is always stored canonicalized (canonicalStringTag), so a
// VT_LPWSTR title and a VT_LPSTR title resolve to the same entry.
type propID struct {
	id        uint32
	valueType ValueType
}

// propInfo is the symbolic name and human description returned for a
// well-known property identifier.
type propInfo struct {
	Name        string
	Description string
}

// Well-known Summary Information (PIDSI_*) property identifiers.
const (
	PIDSITitle       = 0x02
	PIDSISubject     = 0x03
	PIDSIAuthor      = 0x04
	PIDSIKeywords    = 0x05
	PIDSIComments    = 0x06
	PIDSITemplate    = 0x07
	PIDSILastAuthor  = 0x08
	PIDSIRevNumber   = 0x09
	PIDSIEditTime    = 0x0A
	PIDSILastPrinted = 0x0B
	PIDSICreateDTM   = 0x0C
	PIDSILastSaveDTM = 0x0D
	PIDSIPageCount   = 0x0E
	PIDSIWordCount   = 0x0F
	PIDSICharCount   = 0x10
	PIDSIThumbnail   = 0x11
	PIDSIAppName     = 0x12
	PIDSISecurity    = 0x13
)

// Well-known Document Summary Information (PIDDSI_*) property
// identifiers.
const (
	PIDDSICategory    = 0x02
	PIDDSIPresFormat  = 0x03
	PIDDSIByteCount   = 0x04
	PIDDSILineCount   = 0x05
	PIDDSIParCount    = 0x06
	PIDDSISlideCount  = 0x07
	PIDDSINoteCount   = 0x08
	PIDDSIHiddenCount = 0x09
	PIDDSIMMClipCount = 0x0A
	PIDDSIScale       = 0x0B
	PIDDSIDocParts    = 0x0D
	PIDDSIManager     = 0x0E
	PIDDSICompany     = 0x0F
	PIDDSILinksDirty  = 0x10
)

// summaryInfoProps is the Summary Information FMTID's well-known
// property identifier table (§6.2, §3 "Property identifier tables").
// Keys use the canonical string tag (VT_LPSTR), so a VT_LPWSTR-tagged
// title resolves to the same entry as a VT_LPSTR-tagged one.
var summaryInfoProps = map[propID]propInfo{
	{PIDSITitle, VTLPStr}:          {"PIDSI_TITLE", "Title"},
	{PIDSISubject, VTLPStr}:        {"PIDSI_SUBJECT", "Subject"},
	{PIDSIAuthor, VTLPStr}:         {"PIDSI_AUTHOR", "Author"},
	{PIDSIKeywords, VTLPStr}:       {"PIDSI_KEYWORDS", "Keywords"},
	{PIDSIComments, VTLPStr}:       {"PIDSI_COMMENTS", "Comments"},
	{PIDSITemplate, VTLPStr}:       {"PIDSI_TEMPLATE", "Template"},
	{PIDSILastAuthor, VTLPStr}:     {"PIDSI_LASTAUTHOR", "Last saved by"},
	{PIDSIRevNumber, VTLPStr}:      {"PIDSI_REVNUMBER", "Revision number"},
	{PIDSIEditTime, VTFileTime}:    {"PIDSI_EDITTIME", "Total editing time"},
	{PIDSILastPrinted, VTFileTime}: {"PIDSI_LASTPRINTED", "Last printed"},
	{PIDSICreateDTM, VTFileTime}:   {"PIDSI_CREATE_DTM", "Create time/date"},
	{PIDSILastSaveDTM, VTFileTime}: {"PIDSI_LASTSAVE_DTM", "Last saved time/date"},
	{PIDSIPageCount, VTI4}:         {"PIDSI_PAGECOUNT", "Number of pages"},
	{PIDSIWordCount, VTI4}:         {"PIDSI_WORDCOUNT", "Number of words"},
	{PIDSICharCount, VTI4}:         {"PIDSI_CHARCOUNT", "Number of characters"},
	{PIDSIThumbnail, VTClipData}:   {"PIDSI_THUMBNAIL", "Thumbnail"},
	{PIDSIAppName, VTLPStr}:        {"PIDSI_APPNAME", "Creating application"},
	{PIDSISecurity, VTI4}:          {"PIDSI_SECURITY", "Security"},
}

// documentSummaryInfoProps is the Document Summary Information FMTID's
// well-known property identifier table.
var documentSummaryInfoProps = map[propID]propInfo{
	{PIDDSICategory, VTLPStr}:             {"PIDDSI_CATEGORY", "Category"},
	{PIDDSIPresFormat, VTLPStr}:           {"PIDDSI_PRESFORMAT", "Presentation format"},
	{PIDDSIByteCount, VTI4}:               {"PIDDSI_BYTECOUNT", "Byte count"},
	{PIDDSILineCount, VTI4}:               {"PIDDSI_LINECOUNT", "Line count"},
	{PIDDSIParCount, VTI4}:                {"PIDDSI_PARCOUNT", "Paragraph count"},
	{PIDDSISlideCount, VTI4}:              {"PIDDSI_SLIDECOUNT", "Slide count"},
	{PIDDSINoteCount, VTI4}:               {"PIDDSI_NOTECOUNT", "Note count"},
	{PIDDSIHiddenCount, VTI4}:             {"PIDDSI_HIDDENCOUNT", "Hidden slide count"},
	{PIDDSIMMClipCount, VTI4}:             {"PIDDSI_MMCLIPCOUNT", "Multimedia clip count"},
	{PIDDSIScale, VTBool}:                 {"PIDDSI_SCALE", "Scale"},
	{PIDDSIDocParts, VTVector | VTLPStr}:  {"PIDDSI_DOCPARTS", "Titles of parts"},
	{PIDDSIManager, VTLPStr}:              {"PIDDSI_MANAGER", "Manager"},
	{PIDDSICompany, VTLPStr}:              {"PIDDSI_COMPANY", "Company"},
	{PIDDSILinksDirty, VTBool}:            {"PIDDSI_LINKSDIRTY", "Links dirty"},
}

// LookupPropertyID returns the symbolic name and description of a
// well-known property, given the FMTID of the Set it was found in, its
// numeric identifier, and its (raw, pre-aliasing) value type. It
// reports ok=false for an FMTID or identifier this table doesn't cover,
// which is the normal case for anything outside Summary/Document
// Summary Information (§3 "Property identifier tables", §6.4).
func LookupPropertyID(fmtid GUID, id uint32, valueType ValueType) (propInfo, bool) {
	key := propID{id: id, valueType: canonicalStringTag(valueType)}

	switch fmtid {
	case SummaryInformationFMTID:
		info, ok := summaryInfoProps[key]
		return info, ok
	case DocumentSummaryInformationFMTID:
		info, ok := documentSummaryInfoProps[key]
		return info, ok
	default:
		return propInfo{}, false
	}
}
