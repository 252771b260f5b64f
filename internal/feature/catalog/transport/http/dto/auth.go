// Package dto はcatalogフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignupReq は/signupエンドポイントのリクエストボディを表します。
// メール形式とユーザー名の文字種はエンティティ側で検証されます。
type SignupReq struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenRes はログイン成功時のレスポンスです。
type TokenRes struct {
	Token string `json:"token"`
}

// UserRes is the public view of a user. The password hash is never exposed.
type UserRes struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
