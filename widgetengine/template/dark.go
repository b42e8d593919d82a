package template

var darkTemplate = Definition{
	ID:          "dark",
	Name:        "Dark",
	Description: "Dark panel with vector icons and a subtle glow.",
	Variant: Variant{
		ClassPrefix: "fcwd",
		IconSet:     "svg",
	},
	HTML: `<div class="fcwd-root fcwd-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcwd-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcwd-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcwd-modal-header">
        <span class="fcwd-status-dot"></span>
        <span class="fcwd-greeting">{{GREETING_MESSAGE}}</span>
        <button class="fcwd-close" type="button" aria-label="Close">&times;</button>
      </div>
      {{VIDEO_MARKUP}}
      <div class="fcwd-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcwd-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcwd-tooltip fcwd-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcwd-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcwd-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
}
.fcwd-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 50%;
  border: 1px solid rgba(255, 255, 255, 0.08);
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 0 22px rgba(0, 0, 0, 0.55);
  transition: transform 0.2s ease;
  overflow: hidden;
  padding: 0;
}
.fcwd-button:hover { transform: translateY(-2px); }
.fcwd-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcwd-svg { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; fill: currentColor; }
.fcwd-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcwd-button-video { width: 100%; height: 100%; object-fit: cover; border-radius: 50%; }
.fcwd-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: #f9fafb;
  color: #111827;
  padding: 6px 10px;
  border-radius: 6px;
  font-size: 13px;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.15s ease;
}
.fcwd-root:hover .fcwd-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcwd-modal {
  position: fixed;
  inset: 0;
  display: none;
  align-items: flex-end;
  background: rgba(0, 0, 0, 0.45);
  z-index: 999998;
}
.fcwd-modal.fcwd-open { display: flex; }
.fcwd-modal-content {
  background: #111827;
  color: #e5e7eb;
  border: 1px solid #1f2937;
  border-radius: 12px;
  width: 320px;
  max-width: calc(100vw - 32px);
  max-height: 70vh;
  overflow-y: auto;
  box-shadow: 0 16px 48px rgba(0, 0, 0, 0.6);
}
.fcwd-modal-header {
  display: flex;
  align-items: center;
  gap: 8px;
  padding: 14px 16px;
  border-bottom: 1px solid #1f2937;
}
.fcwd-status-dot {
  width: 8px;
  height: 8px;
  border-radius: 50%;
  background: #22c55e;
  flex-shrink: 0;
}
.fcwd-greeting { flex: 1; font-size: 15px; font-weight: 600; color: #f9fafb; }
.fcwd-close {
  border: none;
  background: none;
  font-size: 20px;
  line-height: 1;
  cursor: pointer;
  color: #9ca3af;
  padding: 2px 6px;
}
.fcwd-close:hover { color: #f9fafb; }
.fcwd-channels {
  display: flex;
  flex-direction: column;
  gap: {{CHANNEL_GAP}}px;
  padding: 14px 16px;
}
.fcwd-channel {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 10px 12px;
  border-radius: 8px;
  color: #fff;
  text-decoration: none;
  cursor: pointer;
  font-size: 14px;
  transition: filter 0.15s ease;
}
.fcwd-channel:hover { filter: brightness(1.15); }
.fcwd-channel-icon { display: inline-flex; align-items: center; }
.fcwd-channel-icon svg { width: 18px; height: 18px; fill: currentColor; }
.fcwd-channel-icon img { width: 20px; height: 20px; object-fit: contain; }
.fcwd-channel-label { flex: 1; }
.fcwd-group { position: relative; }
.fcwd-group-trigger {
  display: flex;
  align-items: center;
  gap: 10px;
  width: 100%;
  padding: 10px 12px;
  border: none;
  border-radius: 8px;
  color: #fff;
  cursor: pointer;
  font-size: 14px;
  text-align: left;
}
.fcwd-caret { margin-left: auto; transition: transform 0.15s ease; }
.fcwd-group.fcwd-open .fcwd-caret { transform: rotate(180deg); }
.fcwd-dropdown {
  display: none;
  flex-direction: column;
  gap: 6px;
  margin-top: 6px;
  padding: 8px;
  border-radius: 8px;
  background: #1f2937;
}
.fcwd-group.fcwd-open .fcwd-dropdown { display: flex; }
.fcwd-dropdown-item {
  display: flex;
  align-items: center;
  gap: 8px;
  padding: 8px 10px;
  border-radius: 6px;
  color: #e5e7eb;
  font-size: 13px;
  cursor: pointer;
  text-decoration: none;
}
.fcwd-dropdown-item:hover { background: #374151; }
.fcwd-empty {
  padding: 18px 16px;
  text-align: center;
  color: #6b7280;
  font-size: 13px;
}
.fcwd-video { padding: 12px 16px 0; }
.fcwd-video video { width: 100%; border-radius: 8px; display: block; }
.fcwd-video-top { display: flex; align-items: flex-start; }
.fcwd-video-center { display: flex; align-items: center; }
.fcwd-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcwd-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcwd-svg { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwd-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwd-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
  .fcwd-modal-content { width: calc(100vw - 24px); }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcwd-button');
var modal = root.querySelector('.fcwd-modal');
var closeButton = root.querySelector('.fcwd-close');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcwd-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcwd-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  modal.classList.toggle('fcwd-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
closeButton.addEventListener('click', function () {
  modal.classList.remove('fcwd-open');
  closeGroup();
});
modal.addEventListener('click', function (ev) {
  if (ev.target === modal) {
    modal.classList.remove('fcwd-open');
    closeGroup();
  }
});
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    modal.classList.remove('fcwd-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwd-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcwd-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwd-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcwd-group'));
  });
});
document.addEventListener('click', function (ev) {
  if (openGroup && !openGroup.contains(ev.target)) {
    closeGroup();
  }
});`,
}
