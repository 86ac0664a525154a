package domain

// InteractionState はページ寿命の対話状態です。常にちょうど1つが有効です。
type InteractionState int

const (
	// StateIdle はページ読み込み直後の初期状態です。
	StateIdle InteractionState = iota
	// StateSubmitting は生成要求が実行中の状態です。追加の submit は無視されます。
	StateSubmitting
	// StateDisplaying は生成画像を表示中の状態です。
	StateDisplaying
	// StateFailed はエラーメッセージを表示中の状態です。再投稿で復帰できます。
	StateFailed
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// VisibleRegion は画面上で表示される領域です。
// hidden 切り替えの対象となる3領域のうち、同時に表示されるのは高々1つです。
type VisibleRegion int

const (
	// RegionNone は Idle 状態で何も表示されていないことを表します。
	RegionNone VisibleRegion = iota
	// RegionLoading はローディングインジケーターです。
	RegionLoading
	// RegionImage は生成画像を含む出力ペインです。
	RegionImage
	// RegionError はエラーメッセージを含む出力ペインです。
	RegionError
)

// View は描画層へ渡す状態スナップショットです。
// 表示領域は State から一意に導出されるため、複数領域が同時に「見える」ことはありません。
type View struct {
	State        InteractionState
	ImageRef     string // StateDisplaying のときのみ非空
	ErrorMessage string // StateFailed のときのみ非空
}

// ShowLoading はローディングインジケーターを表示すべきかを返します。
func (v View) ShowLoading() bool { return v.Visible() == RegionLoading }

// ShowImage は生成画像の出力ペインを表示すべきかを返します。
func (v View) ShowImage() bool { return v.Visible() == RegionImage }

// ShowError はエラーメッセージの出力ペインを表示すべきかを返します。
func (v View) ShowError() bool { return v.Visible() == RegionError }

// Visible は現在の状態で表示されるべき領域を返します。
func (v View) Visible() VisibleRegion {
	switch v.State {
	case StateSubmitting:
		return RegionLoading
	case StateDisplaying:
		return RegionImage
	case StateFailed:
		return RegionError
	default:
		return RegionNone
	}
}
