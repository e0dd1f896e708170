package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

type PieceInfo struct {
	ID       puzzle.PieceID
	Color    puzzle.Color
	Size     puzzle.Size
	Anchor   puzzle.Coord
	Relative puzzle.Direction
	Active   bool
}

type PieceBrowserCache struct {
	pieces        []PieceInfo
	sortColumn    int
	sortAscending bool
}

func NewPieceBrowserPanel(maxRowsPerPage int) *PieceBrowserPanel {
	return &PieceBrowserPanel{
		cache: &PieceBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		selectedPieceId: puzzle.NoPiece,
		maxRowsPerPage:  maxRowsPerPage,
	}
}

func (pb *PieceBrowserPanel) Render(p *puzzle.Puzzle) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Piece Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pb.rebuildCache(p)

	imgui.InputTextWithHint("##search", "Search...", &pb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		pb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PieceTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Color")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Anchor")
		imgui.TableSetupColumn("Side")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			sortSpec := sortSpecs.Specs()
			pb.cache.sortColumn = int(sortSpec.ColumnIndex())
			pb.cache.sortAscending = sortSpec.SortDirection() == imgui.SortDirectionAscending
			pb.sortPieces()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := pb.getFilteredPieces()

		startIdx := pb.currentPage * pb.maxRowsPerPage
		endIdx := min(startIdx+pb.maxRowsPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			piece := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d", piece.ID)
			if piece.Active {
				label += " *"
			}
			isSelected := pb.selectedPieceId == piece.ID
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				pb.selectedPieceId = piece.ID
			}

			imgui.TableNextColumn()
			imgui.TextColored(ColorVec4(piece.Color, 1), piece.Color.String())

			imgui.TableNextColumn()
			imgui.Text(piece.Size.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%d, %d)", piece.Anchor.X, piece.Anchor.Y))

			imgui.TableNextColumn()
			imgui.Text(piece.Relative.String())
		}

		imgui.EndTable()
	}

	filtered := pb.getFilteredPieces()
	if len(filtered) > pb.maxRowsPerPage {
		totalPages := (len(filtered) + pb.maxRowsPerPage - 1) / pb.maxRowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d pieces)", pb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && pb.currentPage > 0 {
			pb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && pb.currentPage < totalPages-1 {
			pb.currentPage++
		}
	} else {
		pb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d pieces (* = active pair)", len(filtered)))
	}

	imgui.End()
}

// rebuildCache refreshes the rows from the puzzle. Boards hold at most a few
// hundred pieces, so this runs every frame.
func (pb *PieceBrowserPanel) rebuildCache(p *puzzle.Puzzle) {
	pb.cache.pieces = pb.cache.pieces[:0]

	active, hasActive := p.ActivePair()
	for _, piece := range p.Pieces() {
		isActive := hasActive && (piece.ID == active.Primary.ID || piece.ID == active.Secondary.ID)
		pb.cache.pieces = append(pb.cache.pieces, PieceInfo{
			ID:       piece.ID,
			Color:    piece.Color,
			Size:     piece.Size,
			Anchor:   piece.Anchor,
			Relative: piece.Relative,
			Active:   isActive,
		})
	}

	pb.sortPieces()
}

func (pb *PieceBrowserPanel) sortPieces() {
	sort.Slice(pb.cache.pieces, func(i, j int) bool {
		a, b := pb.cache.pieces[i], pb.cache.pieces[j]
		var less bool

		switch pb.cache.sortColumn {
		case 1:
			less = a.Color < b.Color
		case 2:
			less = a.Size < b.Size
		case 3:
			less = a.Anchor.Y < b.Anchor.Y || (a.Anchor.Y == b.Anchor.Y && a.Anchor.X < b.Anchor.X)
		case 4:
			less = a.Relative < b.Relative
		default:
			less = a.ID < b.ID
		}

		if !pb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (pb *PieceBrowserPanel) getFilteredPieces() []PieceInfo {
	if pb.filterText == "" {
		return pb.cache.pieces
	}

	filtered := make([]PieceInfo, 0, len(pb.cache.pieces))
	filterLower := strings.ToLower(pb.filterText)

	for _, piece := range pb.cache.pieces {
		idStr := fmt.Sprintf("%d", piece.ID)
		colorStr := strings.ToLower(piece.Color.String())
		sizeStr := strings.ToLower(piece.Size.String())

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(colorStr, filterLower) &&
			!strings.Contains(sizeStr, filterLower) {
			continue
		}

		filtered = append(filtered, piece)
	}

	return filtered
}

func (pb *PieceBrowserPanel) SelectedPiece() puzzle.PieceID {
	return pb.selectedPieceId
}
